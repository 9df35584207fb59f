package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-router"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	worldclock "github.com/goliatone/go-worldclock"
)

// AppConfig is populated from the environment. SECRET_KEY is the only
// required variable, everything else has a workable default.
type AppConfig struct {
	SecretKey       string `envconfig:"SECRET_KEY" required:"true"`
	Port            int    `envconfig:"PORT" default:"5000"`
	DSN             string `envconfig:"DATABASE_DSN" default:"file:worldclock.db?cache=shared"`
	TokenExpiration int    `envconfig:"TOKEN_EXPIRATION_HOURS" default:"0"`
	Issuer          string `envconfig:"TOKEN_ISSUER"`
	Debug           bool   `envconfig:"DEBUG" default:"false"`
}

func (c AppConfig) GetSigningKey() string    { return c.SecretKey }
func (c AppConfig) GetSigningMethod() string { return "HS256" }
func (c AppConfig) GetContextKey() string    { return "user" }
func (c AppConfig) GetTokenExpiration() int  { return c.TokenExpiration }
func (c AppConfig) GetTokenLookup() string   { return "header:Authorization" }
func (c AppConfig) GetAuthScheme() string    { return "Bearer" }
func (c AppConfig) GetIssuer() string        { return c.Issuer }
func (c AppConfig) GetAudience() []string    { return nil }

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := newLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))

	ctx := context.Background()

	db, err := openDatabase(ctx, cfg.DSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	repo := worldclock.NewRepositoryManager(db)
	repo.MustValidate()

	provider := worldclock.NewUserProvider(repo.Users()).WithLogger(logger)
	auther := worldclock.NewAuthenticator(provider, cfg).WithLogger(logger)

	httpAuth, err := worldclock.NewHTTPAuthenticator(auther, repo, cfg)
	if err != nil {
		log.Fatalf("http auth: %v", err)
	}
	httpAuth.WithLogger(logger)

	prefs := worldclock.NewPreferenceService(repo.Users()).WithLogger(logger)

	controller := worldclock.NewAuthController(
		worldclock.WithControllerDebug(cfg.Debug),
		worldclock.WithControllerLogger(logger),
		worldclock.WithControllerRepo(repo),
		worldclock.WithControllerAuthenticator(auther),
		worldclock.WithControllerPreferences(prefs),
	)

	srv := router.NewFiberAdapter(func(a *fiber.App) *fiber.App {
		return router.DefaultFiberOptions(fiber.New(fiber.Config{
			AppName:      "worldclock",
			ErrorHandler: fallbackErrorHandler,
		}))
	})

	srv.Router().WithLogger(logger)

	worldclock.RegisterAuthRoutes(srv.Router(), controller, httpAuth.ProtectedRoute())

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("listening on %s", addr)

	srv.Serve(addr)

	WaitExitSignal()
}

func openDatabase(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if _, err := db.NewCreateTable().
		Model((*worldclock.User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// fallbackErrorHandler covers what the routed handlers do not: unmatched
// paths get a JSON 404, anything else a generic 500 with no detail.
func fallbackErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).JSON(fiber.Map{
			"message": "route not found",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Something broke",
	})
}

func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}

// slogAdapter exposes a *slog.Logger through the printf style interface the
// library components expect.
type slogAdapter struct {
	logger *slog.Logger
}

func newLogger(l *slog.Logger) slogAdapter {
	return slogAdapter{logger: l}
}

func (s slogAdapter) Debug(format string, args ...any) {
	s.logger.Debug(fmt.Sprintf(format, args...))
}

func (s slogAdapter) Info(format string, args ...any) {
	s.logger.Info(fmt.Sprintf(format, args...))
}

func (s slogAdapter) Warn(format string, args ...any) {
	s.logger.Warn(fmt.Sprintf(format, args...))
}

func (s slogAdapter) Error(format string, args ...any) {
	s.logger.Error(fmt.Sprintf(format, args...))
}
