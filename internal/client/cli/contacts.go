package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
)

func (a *App) listContacts(ctx context.Context) {
	if err := a.contacts.FetchAll(ctx); err != nil {
		return
	}
	items := a.contacts.Contacts()
	if len(items) == 0 {
		printlnFn("no contacts yet")
		return
	}
	for i, item := range items {
		line := fmt.Sprintf("%2d %s <%s>", i+1, item.Name, item.Email)
		if item.Phone != nil {
			line += " " + *item.Phone
		}
		printlnFn(line)
	}
}

func (a *App) addContact(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return
	}
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return
	}
	phone, err := GetOptionalText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return
	}

	_ = a.contacts.Add(ctx, models.ContactInput{Name: name, Email: email, Phone: phone})
}
