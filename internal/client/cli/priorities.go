package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
)

func (a *App) listPriorities(ctx context.Context) {
	if err := a.priorities.FetchAll(ctx); err != nil {
		return
	}
	items := a.priorities.Priorities()
	if len(items) == 0 {
		printlnFn("no priorities yet")
		return
	}
	for i, item := range items {
		channels := ""
		if item.EmailNotification {
			channels += " email"
		}
		if item.SMSNotification {
			channels += " sms"
		}
		if item.WhatsAppNotification {
			channels += " whatsapp"
		}
		if channels == "" {
			channels = " none"
		}
		printlnFn(fmt.Sprintf("%2d %s (notify:%s)", i+1, item.Name, channels))
	}
}

func (a *App) addPriority(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return
	}
	email, err := GetBool(a.reader, "Notify by email?", os.Stdout)
	if err != nil {
		return
	}
	sms, err := GetBool(a.reader, "Notify by SMS?", os.Stdout)
	if err != nil {
		return
	}
	whatsapp, err := GetBool(a.reader, "Notify by WhatsApp?", os.Stdout)
	if err != nil {
		return
	}

	_ = a.priorities.Add(ctx, models.PriorityInput{
		Name:                 name,
		EmailNotification:    email,
		SMSNotification:      sms,
		WhatsAppNotification: whatsapp,
	})
}

func (a *App) deletePriority(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("usage: delp <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	items := a.priorities.Priorities()
	if err != nil || n < 1 || n > len(items) {
		printlnFn("no such priority:", args[0])
		return
	}
	_ = a.priorities.Delete(ctx, items[n-1].ID)
}
