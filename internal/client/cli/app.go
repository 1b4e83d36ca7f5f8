package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/undefineddevelopers/skillexchange/internal/client/api"
	"github.com/undefineddevelopers/skillexchange/internal/client/config"
	"github.com/undefineddevelopers/skillexchange/internal/client/repositories/credentials"
	"github.com/undefineddevelopers/skillexchange/internal/client/repositories/preferences"
	"github.com/undefineddevelopers/skillexchange/internal/client/services"
	"github.com/undefineddevelopers/skillexchange/internal/client/storage"
	"github.com/undefineddevelopers/skillexchange/internal/logging"
)

// App ties the API client, session facade and local repositories to the
// interactive REPL.
type App struct {
	config  *config.Config
	client  api.Client
	session services.SessionService
	search  *services.SearchService
	prefs   *preferences.SQLiteRepository
	log     logging.Logger

	db     *sql.DB
	reader *bufio.Reader

	// loggedIn and userName mirror the persisted session for the prompt;
	// both are refreshed on startup and after login/logout.
	loggedIn bool
	userName string
	admin    bool
}

// NewApp opens the local database, runs migrations, and wires all services.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "initializing database failed", "error", err)
		return nil, err
	}

	store := credentials.NewStore(credentials.NewSQLiteRepository(db))
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, store, log)

	return &App{
		config:  c,
		client:  apiClient,
		session: services.NewSessionService(apiClient, store, log),
		search:  services.NewSearchService(apiClient),
		prefs:   preferences.NewSQLiteRepository(db),
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) isAdmin() bool {
	return a.admin
}

// restoreSession refreshes the prompt state from the persisted session.
// The cached user snapshot avoids a network round-trip on startup.
func (a *App) restoreSession(ctx context.Context) {
	ok, err := a.session.IsAuthenticated(ctx)
	if err != nil {
		a.log.Warn(ctx, "reading session state failed", "error", err)
		return
	}
	a.loggedIn = ok
	if !ok {
		a.userName = ""
		a.admin = false
		return
	}
	if user, err := a.session.CachedUser(ctx); err == nil && user != nil {
		a.userName = user.Name
		a.admin = user.Role() == api.RoleSuperAdmin
	}
}
