package httpapi

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

// eqParam extracts the value of an "eq." equality filter from the query.
func eqParam(q url.Values, key string) (string, bool) {
	v, ok := strings.CutPrefix(q.Get(key), "eq.")
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// requireID extracts the mandatory id=eq.<id> filter for row-level updates
// and deletes.
func requireID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := eqParam(r.URL.Query(), "id")
	if !ok {
		writeError(w, http.StatusBadRequest, codeValidation, "missing id filter")
		return "", false
	}
	return id, true
}

// ---- todos ----

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	// The row scope always comes from the token subject; an owner_id filter
	// in the query cannot widen it.
	items, err := s.todos.List(r.Context(), accountIDFromContext(r.Context()), r.URL.Query().Get("order"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleInsertTodo(w http.ResponseWriter, r *http.Request) {
	var todo models.Todo
	if err := decodeBody(r, &todo); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	created, err := s.todos.Create(r.Context(), accountIDFromContext(r.Context()), &todo)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	var patch models.TodoPatch
	if err := decodeBody(r, &patch); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	updated, err := s.todos.Update(r.Context(), accountIDFromContext(r.Context()), id, &patch)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	if err := s.todos.Delete(r.Context(), accountIDFromContext(r.Context()), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- priorities ----

func (s *Server) handleListPriorities(w http.ResponseWriter, r *http.Request) {
	items, err := s.priorities.List(r.Context(), accountIDFromContext(r.Context()), r.URL.Query().Get("order"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleInsertPriority(w http.ResponseWriter, r *http.Request) {
	var priority models.Priority
	if err := decodeBody(r, &priority); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	created, err := s.priorities.Create(r.Context(), accountIDFromContext(r.Context()), &priority)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdatePriority(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	var patch models.PriorityPatch
	if err := decodeBody(r, &patch); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	updated, err := s.priorities.Update(r.Context(), accountIDFromContext(r.Context()), id, &patch)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeletePriority(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	if err := s.priorities.Delete(r.Context(), accountIDFromContext(r.Context()), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- contacts ----

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// email=eq.<addr>&cardinality=maybe is the single-row lookup form;
	// absence is reported as 204, not as an error.
	if email, ok := eqParam(q, "email"); ok {
		contact, err := s.contacts.FindByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) && q.Get("cardinality") == "maybe" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, contact)
		return
	}

	items, err := s.contacts.List(r.Context(), q.Get("order"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleInsertContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := decodeBody(r, &contact); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	created, err := s.contacts.Create(r.Context(), &contact)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			writeError(w, http.StatusConflict, codeConflict, common.ErrDuplicateContact.Error())
			return
		}
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ---- settings ----

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	row, err := s.settings.Get(r.Context(), accountIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) && r.URL.Query().Get("cardinality") == "maybe" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleInsertSettings(w http.ResponseWriter, r *http.Request) {
	var row models.Settings
	if err := decodeBody(r, &row); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	created, err := s.settings.Create(r.Context(), accountIDFromContext(r.Context()), &row)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ownerID := accountIDFromContext(r.Context())

	row, err := s.settings.Get(r.Context(), ownerID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	var patch models.SettingsPatch
	if err := decodeBody(r, &patch); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	updated, err := s.settings.Update(r.Context(), ownerID, row.ID, &patch)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
