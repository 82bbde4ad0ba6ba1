package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
)

func (a *App) showSettings(ctx context.Context) {
	if err := a.settings.Fetch(ctx); err != nil {
		return
	}
	row := a.settings.Settings()
	if row == nil {
		return
	}

	sender := "(not set)"
	if row.SenderEmail != nil {
		sender = *row.SenderEmail
	}
	template := "(not set)"
	if row.EmailTemplate != nil {
		template = *row.EmailTemplate
	}
	printlnFn("sender email: ", sender)
	printlnFn("mail template:", template)
}

func (a *App) editSettings(ctx context.Context) {
	sender, err := GetOptionalText(a.reader, "Sender email", os.Stdout)
	if err != nil {
		return
	}
	template, err := GetOptionalText(a.reader, "Mail template", os.Stdout)
	if err != nil {
		return
	}
	if sender == nil && template == nil {
		printlnFn("nothing to change")
		return
	}

	_ = a.settings.Save(ctx, models.SettingsPatch{
		SenderEmail:   sender,
		EmailTemplate: template,
	})
}
