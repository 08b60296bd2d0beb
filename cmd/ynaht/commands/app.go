package commands

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ynaht/ynaht/internal/config"
	"github.com/ynaht/ynaht/internal/engine"
	"github.com/ynaht/ynaht/internal/logger"
	"github.com/ynaht/ynaht/internal/models"
	"github.com/ynaht/ynaht/internal/storage"
	"github.com/ynaht/ynaht/internal/syncer"
)

const defaultAPIURL = "http://localhost:8080/api"

// App bundles the client-side plumbing every command needs: the local
// store, the state engine, and the sync engine.
type App struct {
	Cfg    *config.CLIConfig
	Local  *storage.Local
	Store  *engine.Store
	Sync   *syncer.Engine
	Logger *zap.Logger
}

// openApp loads config, opens the local store, and hydrates the engine
// from the persisted state.
func openApp() (*App, error) {
	cfg, err := config.LoadCLI()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	zapLogger := zap.NewNop()
	if cfg.Debug {
		zapLogger, err = logger.NewDevelopmentLogger(true)
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir, err = storage.DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}
	local, err := storage.NewLocal(dataDir)
	if err != nil {
		return nil, err
	}

	state := local.LoadState(models.NewAppState())
	store := engine.NewStore(engine.WithInitialState(state))

	userID, err := local.UserID()
	if err != nil {
		return nil, fmt.Errorf("resolve user id: %w", err)
	}

	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	client := syncer.NewClient(apiURL, userID)
	sync := syncer.NewEngine(client, local, zapLogger)

	return &App{
		Cfg:    cfg,
		Local:  local,
		Store:  store,
		Sync:   sync,
		Logger: zapLogger,
	}, nil
}

// Dispatch applies an action, persists the result locally, and pushes it
// to the remote. A failed push is not fatal: the snapshot lands in the
// offline queue and syncs on the next successful push.
func (a *App) Dispatch(action engine.Action) *models.AppState {
	next := a.Store.Dispatch(action)
	if err := a.Local.SaveState(next); err != nil {
		fmt.Printf("Warning: failed to save locally: %v\n", err)
	}
	if err := a.Sync.Save(next, true); err != nil {
		fmt.Println("Offline: change queued for sync.")
	}
	return next
}

// Close stops the sync engine and flushes logs.
func (a *App) Close() {
	a.Sync.Stop()
	_ = logger.Sync(a.Logger)
}

// requireSession returns the active session or an error when no day has
// been started.
func requireSession(state *models.AppState) (*models.DaySession, error) {
	session := state.CurrentSession()
	if session == nil {
		return nil, fmt.Errorf("no active day (run 'ynaht day start' first)")
	}
	return session, nil
}

// parseClock combines an HH:mm wall-clock string with the date of base.
func parseClock(base time.Time, hhmm string) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", hhmm, base.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (must be HH:mm)", hhmm)
	}
	return time.Date(base.Year(), base.Month(), base.Day(), t.Hour(), t.Minute(), 0, 0, base.Location()), nil
}

// findActivity resolves an activity by ID or unique name prefix within the
// active session.
func findActivity(session *models.DaySession, ref string) (*models.Activity, error) {
	for i := range session.Activities {
		if session.Activities[i].ID == ref {
			return &session.Activities[i], nil
		}
	}
	var match *models.Activity
	for i := range session.Activities {
		a := &session.Activities[i]
		if strings.HasPrefix(strings.ToLower(a.Name), strings.ToLower(ref)) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous activity %q (use the full ID)", ref)
			}
			match = a
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no activity matching %q", ref)
	}
	return match, nil
}
