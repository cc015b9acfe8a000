package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/rollsgame/casino/internal/config"
	"github.com/rollsgame/casino/internal/handlers"
	"github.com/rollsgame/casino/internal/odds"
	"github.com/rollsgame/casino/internal/pg"
	"github.com/rollsgame/casino/internal/reconcile"
	"github.com/rollsgame/casino/internal/repo"
	"github.com/rollsgame/casino/internal/rewards"
	"github.com/rollsgame/casino/internal/service"
	"github.com/rollsgame/casino/pkg/auth"
	"github.com/rollsgame/casino/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	ext  *reconcile.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	a.cfg = cfg
	a.repo = repo.New(conn, txManager)

	// Odds and the reward catalog are loaded once; an invalid configuration
	// refuses to start rather than mispricing live wagers.
	table, rewardPool, err := loadGameConfig(ctx, a.repo)
	if err != nil {
		zap.L().Error("game config rejected: ", zap.Error(err))
		return fmt.Errorf("can't load game config: %w", err)
	}

	a.srv = service.New(a.repo, table, rewardPool, txManager, cfg)
	a.api = handlers.New(a.srv)
	a.ext = reconcile.New(cfg, a.repo.Account, a.repo.Ledger)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startReconciler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.String("odds_version", table.Version()),
		zap.String("reward_pool_version", rewardPool.Version()))
	return nil
}

func loadGameConfig(ctx context.Context, repos *repo.Repositories) (*odds.Table, *rewards.Pool, error) {
	oddsVersion, games, err := repos.Odds.LoadGames(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load odds: %w", err)
	}
	table, err := odds.NewTable(oddsVersion, games)
	if err != nil {
		return nil, nil, fmt.Errorf("validate odds: %w", err)
	}

	poolVersion, items, err := repos.Reward.LoadPool(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load reward pool: %w", err)
	}
	rewardPool, err := rewards.NewPool(poolVersion, items)
	if err != nil {
		return nil, nil, fmt.Errorf("validate reward pool: %w", err)
	}
	return table, rewardPool, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router, auth.NewJWTService(a.cfg.JWTSecret), a.cfg.AdminKeyHash)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startReconciler(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.ext.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
