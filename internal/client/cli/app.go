package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/moneyboy/internal/client/client"
	"github.com/dmitrijs2005/moneyboy/internal/client/config"
	"github.com/dmitrijs2005/moneyboy/internal/client/models"
	"github.com/dmitrijs2005/moneyboy/internal/client/repositories/secrets"
	"github.com/dmitrijs2005/moneyboy/internal/client/services"
	"github.com/dmitrijs2005/moneyboy/internal/cryptox"
	"github.com/dmitrijs2005/moneyboy/internal/filex"
	"github.com/dmitrijs2005/moneyboy/internal/logging"
)

type Mode string

const (
	ModeOffline   Mode = "offline"
	ModeOnline    Mode = "online"
	ModeSignedOut Mode = "signed out"
)

type App struct {
	config   *config.Config
	session  services.SessionService
	payments services.PaymentService
	logger   logging.Logger
	user     *models.UserProfile
	Mode     Mode
	reader   *bufio.Reader
	out      io.Writer
	db       *sql.DB
}

// NewApp opens the local session database, protects it with the device key,
// and wires the API services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dbPath, err := filex.EnsureParentDir(c.DatabasePath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	secret, err := cryptox.LoadOrCreateKeyFile(c.KeyFile)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store, err := secrets.NewEncryptedStore(ctx, secrets.NewSQLiteStore(db), secret)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	httpClient := &http.Client{Timeout: c.HTTPTimeout}
	transport := client.NewHTTPTransport(c.APIBaseURL, httpClient, store, logger)
	pesca := services.NewPesca(transport, store, logger)

	return &App{
		config:   c,
		session:  pesca.SessionService,
		payments: pesca.Payments,
		logger:   logger.With("module", "cli"),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		db:       db,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(ctx, "mode changed", "mode", string(mode))
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// refreshUser asks the server who is logged in. The mode follows the
// answer: a live profile means online, a cached one offline.
func (a *App) refreshUser(ctx context.Context) {
	u, err := a.session.GetUser(ctx)
	if err != nil {
		a.logger.Debug(ctx, "no current user", "error", err)
	}

	a.user = u
	switch {
	case u == nil:
		a.setMode(ctx, ModeSignedOut)
	case u.Cached:
		a.setMode(ctx, ModeOffline)
	default:
		a.setMode(ctx, ModeOnline)
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
