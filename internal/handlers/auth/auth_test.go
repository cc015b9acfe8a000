package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rollsgame/casino/internal/dto"
	"github.com/rollsgame/casino/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestTokenHandler(t *testing.T) {
	handler, service := NewMock(t)
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful token exchange",
			body: `{"client_id":"gateway","secret":"gateway-secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "gateway", "gateway-secret").
					Return("signed.jwt.token", expiresAt, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"client_id":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"client_id":"gateway","secret":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "gateway", "wrong").
					Return("", time.Time{}, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Internal server error",
			body: `{"client_id":"gateway","secret":"gateway-secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "gateway", "gateway-secret").
					Return("", time.Time{}, errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/token", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Token(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.TokenResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "signed.jwt.token", body.Token)
				assert.True(t, expiresAt.Equal(body.ExpiresAt))
			}
		})
	}
}
