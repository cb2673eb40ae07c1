package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"worldquery/internal/client/config"
	"worldquery/internal/client/explore"
	"worldquery/internal/client/models"
	"worldquery/internal/client/restcountries"
	"worldquery/internal/client/services"
	"worldquery/internal/client/storage"
	"worldquery/internal/logging"
)

// App wires the WorldQuery services together and carries the interactive
// view state: the active browse filters, the comparison slots, and the
// expanded comparison categories.
type App struct {
	config    *config.Config
	log       logging.Logger
	store     *storage.SQLiteStore
	session   *services.Session
	registry  *services.Registry
	countries *services.Countries
	api       *restcountries.Client

	criteria explore.Criteria
	slots    [explore.Slots]*models.Country
	expanded explore.ExpandSet

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	store, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing local store", "error", err)
		return nil, err
	}

	api := restcountries.New(cfg.APIBaseURL, cfg.RequestTimeout)
	session := services.NewSession(store, log)
	registry := services.NewRegistry(store, session, log)
	countries := services.NewCountries(api, log)

	return &App{
		config:    cfg,
		log:       log,
		store:     store,
		session:   session,
		registry:  registry,
		countries: countries,
		api:       api,
		expanded:  explore.ExpandSet{},
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	// restore a previous session before the first prompt
	a.session.Hydrate(ctx)

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

var _ execIface = (*App)(nil)
