package stores

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
	"github.com/dmitrijs2005/justdoit/internal/client/remote"
	"github.com/dmitrijs2005/justdoit/internal/common"
)

// fakeSessions implements SessionSource.
type fakeSessions struct {
	acc *models.Account
}

func (f *fakeSessions) Account() *models.Account { return f.acc }

// recordingNotifier captures emitted notifications.
type recordingNotifier struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	n.Successes = append(n.Successes, msg)
	n.mu.Unlock()
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	n.Errors = append(n.Errors, msg)
	n.mu.Unlock()
}

// fakeRemote is an in-memory remote.Client honoring the service's ownership
// scoping and ordering rules. Err fields inject failures; Fn fields override
// whole operations for interleaving tests.
type fakeRemote struct {
	mu sync.Mutex

	todos      []models.Todo
	priorities []models.Priority
	contacts   []models.Contact
	settings   map[string]*models.Settings

	clock time.Time

	InsertTodoErr     error
	UpdateTodoErr     error
	DeleteTodoErr     error
	UpdatePriorityErr error
	DeletePriorityErr error
	InsertContactErr  error
	ListContactsErr   error

	UpdateTodoFn func(ctx context.Context, ownerID, id string, patch models.TodoPatch) (*models.Todo, error)

	InsertTodoCalls int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		settings: make(map[string]*models.Settings),
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns strictly increasing timestamps so created_at ordering is
// deterministic.
func (f *fakeRemote) tick() time.Time {
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

func (f *fakeRemote) seedTodo(ownerID, description string) models.Todo {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := models.Todo{
		ID: uuid.NewString(), Description: description,
		Status: models.TodoStatusActive, OwnerID: ownerID, CreatedAt: f.tick(),
	}
	f.todos = append(f.todos, t)
	return t
}

func (f *fakeRemote) seedPriority(ownerID, name string) models.Priority {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := models.Priority{ID: uuid.NewString(), Name: name, OwnerID: ownerID, CreatedAt: f.tick()}
	f.priorities = append(f.priorities, p)
	return p
}

func (f *fakeRemote) Close() error    { return nil }
func (f *fakeRemote) SetToken(string) {}

func (f *fakeRemote) SignUp(ctx context.Context, email, password, displayName, redirectTo string) (*remote.SignUpResult, error) {
	return nil, common.ErrInternal
}

func (f *fakeRemote) SignIn(ctx context.Context, email, password string, remember bool) (*models.Session, error) {
	return nil, common.ErrInternal
}

func (f *fakeRemote) SignOut(ctx context.Context) error { return nil }

func (f *fakeRemote) Session(ctx context.Context) (*models.Session, error) {
	return nil, common.ErrNotAuthenticated
}

func (f *fakeRemote) ResetPassword(ctx context.Context, email, redirectTo string) error { return nil }

func (f *fakeRemote) UpdateAccount(ctx context.Context, patch remote.AccountPatch) (*models.Account, error) {
	return nil, common.ErrInternal
}

func (f *fakeRemote) ListTodos(ctx context.Context, ownerID string) ([]models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Todo
	for _, t := range f.todos {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRemote) InsertTodo(ctx context.Context, ownerID string, input models.TodoInput) (*models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InsertTodoCalls++
	if f.InsertTodoErr != nil {
		return nil, f.InsertTodoErr
	}
	t := models.Todo{
		ID: uuid.NewString(), Description: input.Description,
		Deadline: input.Deadline, Priority: input.Priority, Receiver: input.Receiver,
		Status: input.Status, OwnerID: ownerID, CreatedAt: f.tick(),
	}
	f.todos = append(f.todos, t)
	return &t, nil
}

func (f *fakeRemote) UpdateTodo(ctx context.Context, ownerID, id string, patch models.TodoPatch) (*models.Todo, error) {
	if f.UpdateTodoFn != nil {
		return f.UpdateTodoFn(ctx, ownerID, id, patch)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UpdateTodoErr != nil {
		return nil, f.UpdateTodoErr
	}
	for i, t := range f.todos {
		if t.ID == id && t.OwnerID == ownerID {
			f.todos[i] = patch.ApplyTo(t)
			updated := f.todos[i]
			return &updated, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRemote) DeleteTodo(ctx context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteTodoErr != nil {
		return f.DeleteTodoErr
	}
	for i, t := range f.todos {
		if t.ID == id && t.OwnerID == ownerID {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeRemote) ListPriorities(ctx context.Context, ownerID string) ([]models.Priority, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Priority
	for _, p := range f.priorities {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRemote) InsertPriority(ctx context.Context, ownerID string, input models.PriorityInput) (*models.Priority, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := models.Priority{
		ID: uuid.NewString(), Name: input.Name,
		EmailNotification: input.EmailNotification, SMSNotification: input.SMSNotification,
		WhatsAppNotification: input.WhatsAppNotification,
		OwnerID:              ownerID, CreatedAt: f.tick(),
	}
	f.priorities = append(f.priorities, p)
	return &p, nil
}

func (f *fakeRemote) UpdatePriority(ctx context.Context, ownerID, id string, patch models.PriorityPatch) (*models.Priority, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UpdatePriorityErr != nil {
		return nil, f.UpdatePriorityErr
	}
	for i, p := range f.priorities {
		if p.ID == id && p.OwnerID == ownerID {
			f.priorities[i] = patch.ApplyTo(p)
			updated := f.priorities[i]
			return &updated, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRemote) DeletePriority(ctx context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeletePriorityErr != nil {
		return f.DeletePriorityErr
	}
	for i, p := range f.priorities {
		if p.ID == id && p.OwnerID == ownerID {
			f.priorities = append(f.priorities[:i], f.priorities[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeRemote) ListContacts(ctx context.Context) ([]models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListContactsErr != nil {
		return nil, f.ListContactsErr
	}
	out := append([]models.Contact(nil), f.contacts...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRemote) FindContactByEmail(ctx context.Context, email string) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.contacts {
		if c.Email == email {
			found := c
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRemote) InsertContact(ctx context.Context, input models.ContactInput) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.InsertContactErr != nil {
		return nil, f.InsertContactErr
	}
	c := models.Contact{
		ID: uuid.NewString(), Name: input.Name, Email: input.Email, Phone: input.Phone,
		CreatedAt: f.tick(),
	}
	f.contacts = append(f.contacts, c)
	return &c, nil
}

func (f *fakeRemote) GetSettings(ctx context.Context, ownerID string) (*models.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.settings[ownerID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeRemote) InsertSettings(ctx context.Context, ownerID string, patch models.SettingsPatch) (*models.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.tick()
	s := &models.Settings{
		ID: uuid.NewString(), OwnerID: ownerID,
		SenderEmail: patch.SenderEmail, EmailTemplate: patch.EmailTemplate,
		CreatedAt: now, UpdatedAt: now,
	}
	f.settings[ownerID] = s
	cp := *s
	return &cp, nil
}

func (f *fakeRemote) UpdateSettings(ctx context.Context, ownerID string, patch models.SettingsPatch) (*models.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.settings[ownerID]
	if !ok {
		return nil, common.ErrNotFound
	}
	updated := patch.ApplyTo(*s)
	updated.UpdatedAt = f.tick()
	f.settings[ownerID] = &updated
	cp := updated
	return &cp, nil
}
