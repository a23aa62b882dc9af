package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/worktrack-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres/audit"
	clientrepo "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres/client"
	commentrepo "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres/comment"
	counterrepo "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres/counter"
	profilerepo "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres/profile"
	requestrepo "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres/request"
	timecostrepo "github.com/heartmarshall/worktrack-backend/internal/adapter/postgres/timecost"
	"github.com/heartmarshall/worktrack-backend/internal/auth"
	"github.com/heartmarshall/worktrack-backend/internal/config"
	"github.com/heartmarshall/worktrack-backend/internal/notify"
	"github.com/heartmarshall/worktrack-backend/internal/service/activity"
	"github.com/heartmarshall/worktrack-backend/internal/service/client"
	"github.com/heartmarshall/worktrack-backend/internal/service/ledger"
	"github.com/heartmarshall/worktrack-backend/internal/service/numbering"
	"github.com/heartmarshall/worktrack-backend/internal/service/report"
	"github.com/heartmarshall/worktrack-backend/internal/service/request"
	"github.com/heartmarshall/worktrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/worktrack-backend/internal/transport/rest"
)

// rateLimitSweep is how often idle per-client limiters are evicted.
const rateLimitSweep = time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and the HTTP stack, and serves
// until ctx is cancelled. Shutdown drains the server first, then the
// notification queue, then closes the pool.
func Run(ctx context.Context) error {
	// 1. Configuration and logging.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	version := BuildVersion()

	logger.Info("starting application",
		slog.String("version", version),
		slog.String("log_level", cfg.Log.Level),
	)

	// 2. Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	txm := postgres.NewTxManager(pool)

	// 3. Authentication.
	verifier, err := auth.NewVerifier(ctx, logger, cfg.Auth)
	if err != nil {
		pool.Close()
		return fmt.Errorf("create token verifier: %w", err)
	}

	// 4. Repositories.
	requestRepo := requestrepo.New(pool)
	commentRepo := commentrepo.New(pool)
	counterRepo := counterrepo.New(pool)
	clientRepo := clientrepo.New(pool)
	entryRepo := timecostrepo.New(pool)
	profileRepo := profilerepo.New(pool)
	auditRepo := auditrepo.New(pool)

	// 5. Notifications.
	dispatcher := notify.New(logger, cfg.Notify)
	dispatcher.Start()

	// 6. Services.
	requestSvc := request.NewService(logger, requestRepo, commentRepo, profileRepo,
		numbering.NewAllocator(counterRepo), auditRepo, txm, dispatcher)
	ledgerSvc := ledger.NewService(logger, entryRepo, profileRepo, auditRepo, txm)
	reportSvc := report.NewService(logger, entryRepo, requestRepo, clientRepo, cfg.Report)
	clientSvc := client.NewService(logger, clientRepo, auditRepo, txm)
	activitySvc := activity.NewService(logger, auditRepo)

	// 7. HTTP stack.
	limiter := middleware.NewRateLimiter(cfg.RateLimit, rateLimitSweep)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, dispatcher, version),
		Requests: rest.NewRequestHandler(requestSvc, logger),
		Ledger:   rest.NewLedgerHandler(ledgerSvc, logger),
		Reports:  rest.NewReportHandler(reportSvc, logger),
		Clients:  rest.NewClientHandler(clientSvc, logger),
		Activity: rest.NewActivityHandler(activitySvc, logger),
	}, rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		RateLimiter: limiter,
		Auth:        middleware.Auth(verifier),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	// 8. Serve until ctx is done.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return shutdown(shutdownCtx, srv, dispatcher, limiter, pool.Close)
	})

	if err := g.Wait(); err != nil {
		logger.Error("application stopped with error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("application stopped")
	return nil
}

// shutdown stops components in dependency order and collects every failure.
func shutdown(
	ctx context.Context,
	srv *http.Server,
	dispatcher *notify.Dispatcher,
	limiter *middleware.RateLimiter,
	closeDB func(),
) error {
	var err error
	err = multierr.Append(err, srv.Shutdown(ctx))
	err = multierr.Append(err, dispatcher.Stop(ctx))
	limiter.Stop()
	closeDB()
	return err
}
