package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminhandlers "github.com/rollsgame/casino/internal/handlers/admin"
	authhandlers "github.com/rollsgame/casino/internal/handlers/auth"
	balancehandlers "github.com/rollsgame/casino/internal/handlers/balance"
	paymenthandlers "github.com/rollsgame/casino/internal/handlers/payments"
	wagerhandlers "github.com/rollsgame/casino/internal/handlers/wagers"
	"github.com/rollsgame/casino/internal/service"
	"github.com/rollsgame/casino/pkg/auth"
)

type AuthHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
}

type WagerHandler interface {
	PlaceWager(w http.ResponseWriter, r *http.Request)
	PlaceMultiWager(w http.ResponseWriter, r *http.Request)
	GetWagers(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Adjust(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BalanceHandler BalanceHandler
	WagerHandler   WagerHandler
	PaymentHandler PaymentHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BalanceHandler: balancehandlers.New(s.BalanceService, s.RewardService),
		WagerHandler:   wagerhandlers.New(s.WagerService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		AdminHandler:   adminhandlers.New(s.AdminService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, jwtService auth.JWTServiceInterface, adminKeyHash string) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Post("/api/auth/token", h.AuthHandler.Token)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(jwtService))

		r.Route("/api/accounts/{accountID}", func(r chi.Router) {
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Get("/history", h.BalanceHandler.GetHistory)
			r.Get("/rewards", h.BalanceHandler.GetRewards)
			r.Get("/wagers", h.WagerHandler.GetWagers)
			r.Get("/payments", h.PaymentHandler.GetPayments)
		})

		r.Route("/api/wagers", func(r chi.Router) {
			r.Post("/", h.WagerHandler.PlaceWager)
			r.Post("/multi", h.WagerHandler.PlaceMultiWager)
		})

		r.Post("/api/payments", h.PaymentHandler.CreatePayment)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AdminMiddleware(&auth.HashService{}, adminKeyHash))
		r.Post("/api/admin/adjust", h.AdminHandler.Adjust)
	})

	return r
}
