package service

import (
	"github.com/rollsgame/casino/internal/config"
	"github.com/rollsgame/casino/internal/engine"
	adminhandlers "github.com/rollsgame/casino/internal/handlers/admin"
	authhandlers "github.com/rollsgame/casino/internal/handlers/auth"
	balancehandlers "github.com/rollsgame/casino/internal/handlers/balance"
	paymenthandlers "github.com/rollsgame/casino/internal/handlers/payments"
	wagerhandlers "github.com/rollsgame/casino/internal/handlers/wagers"
	"github.com/rollsgame/casino/internal/odds"
	"github.com/rollsgame/casino/internal/pg"
	"github.com/rollsgame/casino/internal/repo"
	"github.com/rollsgame/casino/internal/rewards"
	"github.com/rollsgame/casino/internal/service/authservice"
	"github.com/rollsgame/casino/internal/service/ledgerservice"
	"github.com/rollsgame/casino/internal/service/paymentservice"
	"github.com/rollsgame/casino/internal/service/rewardservice"
	"github.com/rollsgame/casino/internal/service/wagerservice"
	pkgauth "github.com/rollsgame/casino/pkg/auth"
)

type Services struct {
	AuthService    authhandlers.Service
	BalanceService balancehandlers.Service
	RewardService  balancehandlers.RewardService
	WagerService   wagerhandlers.Service
	PaymentService paymenthandlers.Service
	AdminService   adminhandlers.Service
}

func New(repos *repo.Repositories, table *odds.Table, pool *rewards.Pool, txManager pg.TXManager, cfg *config.Config) *Services {
	ledgerService := ledgerservice.New(repos.Account, repos.Ledger)
	rewardService := rewardservice.New(pool, repos.Reward, repos.Wager)
	outcomeEngine := engine.New(table)
	wagerService := wagerservice.New(table, outcomeEngine, ledgerService, repos.Wager, rewardService, txManager)
	paymentService := paymentservice.New(repos.Payment, ledgerService, rewardService, txManager)
	authService := authservice.New(
		pkgauth.NewJWTService(cfg.JWTSecret),
		&pkgauth.HashService{},
		cfg.GatewayClientID,
		cfg.GatewaySecretHash,
		cfg.TokenTTL,
	)

	return &Services{
		AuthService:    authService,
		BalanceService: ledgerService,
		RewardService:  rewardService,
		WagerService:   wagerService,
		PaymentService: paymentService,
		AdminService:   ledgerService,
	}
}
