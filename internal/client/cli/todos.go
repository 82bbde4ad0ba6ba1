package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/justdoit/internal/client/models"
)

func (a *App) listTodos(ctx context.Context) {
	if err := a.todos.FetchAll(ctx); err != nil {
		return
	}
	items := a.todos.Todos()
	if len(items) == 0 {
		printlnFn("no todos yet")
		return
	}
	for i, item := range items {
		marker := " "
		if item.Status == models.TodoStatusInactive {
			marker = "x"
		}
		line := fmt.Sprintf("%2d [%s] %s", i+1, marker, item.Description)
		if item.Deadline != nil {
			line += " (due " + *item.Deadline + ")"
		}
		if item.Priority != nil {
			line += " !" + *item.Priority
		}
		printlnFn(line)
	}
}

func (a *App) addTodo(ctx context.Context) {
	description, err := GetSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return
	}
	deadline, err := GetOptionalText(a.reader, "Deadline", os.Stdout)
	if err != nil {
		return
	}
	priority, err := GetOptionalText(a.reader, "Priority", os.Stdout)
	if err != nil {
		return
	}
	receiver, err := GetOptionalText(a.reader, "Receiver", os.Stdout)
	if err != nil {
		return
	}

	_ = a.todos.Add(ctx, models.TodoInput{
		Description: description,
		Deadline:    deadline,
		Priority:    priority,
		Receiver:    receiver,
	})
}

// todoByIndex resolves a 1-based list position from command args.
func (a *App) todoByIndex(args []string) (models.Todo, bool) {
	if len(args) == 0 {
		printlnFn("usage: toggle|del <n>")
		return models.Todo{}, false
	}
	n, err := strconv.Atoi(args[0])
	items := a.todos.Todos()
	if err != nil || n < 1 || n > len(items) {
		printlnFn("no such todo:", args[0])
		return models.Todo{}, false
	}
	return items[n-1], true
}

func (a *App) toggleTodo(ctx context.Context, args []string) {
	item, ok := a.todoByIndex(args)
	if !ok {
		return
	}
	_ = a.todos.Toggle(ctx, item.ID)
}

func (a *App) deleteTodo(ctx context.Context, args []string) {
	item, ok := a.todoByIndex(args)
	if !ok {
		return
	}
	_ = a.todos.Delete(ctx, item.ID)
}
