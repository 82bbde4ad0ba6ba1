package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/justdoit/internal/dbx"
	"github.com/dmitrijs2005/justdoit/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/justdoit/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/justdoit/internal/server/repositories/priorities"
	"github.com/dmitrijs2005/justdoit/internal/server/repositories/settings"
	"github.com/dmitrijs2005/justdoit/internal/server/repositories/todos"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Todos(db dbx.DBTX) todos.Repository
	Priorities(db dbx.DBTX) priorities.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	Settings(db dbx.DBTX) settings.Repository
}
