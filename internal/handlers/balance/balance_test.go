package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/dto"
	"github.com/rollsgame/casino/internal/rewards"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService, *MockRewardService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	rewardService := NewMockRewardService(ctrl)
	handler := New(service, rewardService)
	defer ctrl.Finish()
	return handler, service, rewardService
}

func requestWithAccountID(method, target, accountID string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("accountID", accountID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		accountID    string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name:      "Successful retrieval",
			accountID: "42",
			prepareMock: func() {
				service.EXPECT().
					GetOrCreate(gomock.Any(), int64(42)).
					Return(&domain.Account{
						UserID:         42,
						CreditsBalance: 500,
						SpinsBalance:   3,
						TotalDeposited: 1000,
						TotalWagered:   450,
						TotalWon:       120,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				AccountID:      42,
				Credits:        500,
				Spins:          3,
				TotalDeposited: 1000,
				TotalWagered:   450,
				TotalWon:       120,
			},
		},
		{
			name:         "Invalid account id",
			accountID:    "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Internal server error",
			accountID: "42",
			prepareMock: func() {
				service.EXPECT().
					GetOrCreate(gomock.Any(), int64(42)).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := requestWithAccountID(http.MethodGet, "/api/accounts/"+tt.accountID+"/balance", tt.accountID)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	now := time.Now().Truncate(time.Second)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "Successful retrieval",
			target: "/api/accounts/42/history",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(gomock.Any(), int64(42), 50).
					Return([]domain.LedgerEntry{
						{AccountID: 42, Currency: domain.CurrencyCredits, Delta: -100, Reason: domain.ReasonWagerDebit, CorrelationID: "w-1", CreatedAt: now},
						{AccountID: 42, Currency: domain.CurrencyCredits, Delta: 198, Reason: domain.ReasonWagerCredit, CorrelationID: "w-1", CreatedAt: now},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "Custom limit",
			target: "/api/accounts/42/history?limit=5",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(gomock.Any(), int64(42), 5).
					Return([]domain.LedgerEntry{{AccountID: 42}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "No history",
			target: "/api/accounts/42/history",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(gomock.Any(), int64(42), 50).
					Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Internal server error",
			target: "/api/accounts/42/history",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(gomock.Any(), int64(42), 50).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := requestWithAccountID(http.MethodGet, tt.target, "42")
			w := httptest.NewRecorder()
			handler.GetHistory(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.LedgerEntryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestGetRewardsHandler(t *testing.T) {
	handler, _, rewardService := NewMock(t)

	pool, err := rewards.NewPool("v1", []rewards.Item{
		{ID: 2, Name: "Silver Chalice", Rarity: "rare", Weight: 100, Value: 25},
	})
	require.NoError(t, err)

	t.Run("owned items resolved against the pool", func(t *testing.T) {
		rewardService.EXPECT().
			ListOwned(gomock.Any(), int64(42)).
			Return([]domain.OwnedItem{{ID: 1, AccountID: 42, ItemID: 2}}, nil)
		rewardService.EXPECT().Pool().Return(pool)

		r := requestWithAccountID(http.MethodGet, "/api/accounts/42/rewards", "42")
		w := httptest.NewRecorder()
		handler.GetRewards(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.OwnedItemResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		require.Len(t, body, 1)
		assert.Equal(t, "Silver Chalice", body[0].Name)
		assert.Equal(t, "rare", body[0].Rarity)
	})

	t.Run("no rewards", func(t *testing.T) {
		rewardService.EXPECT().
			ListOwned(gomock.Any(), int64(42)).
			Return(nil, nil)

		r := requestWithAccountID(http.MethodGet, "/api/accounts/42/rewards", "42")
		w := httptest.NewRecorder()
		handler.GetRewards(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		rewardService.EXPECT().
			ListOwned(gomock.Any(), int64(42)).
			Return(nil, errors.New("db error"))

		r := requestWithAccountID(http.MethodGet, "/api/accounts/42/rewards", "42")
		w := httptest.NewRecorder()
		handler.GetRewards(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
