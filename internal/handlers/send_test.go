package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-mailer/internal/middlewares"
	"github.com/sbilibin2017/gw-mailer/internal/models"
	"github.com/sbilibin2017/gw-mailer/internal/services"
)

func TestSendHandler(t *testing.T) {
	identity := models.Identity{
		UserID: uuid.New(),
		Email:  "sender@example.com",
		Name:   "Sender",
	}

	validBody := SendRequest{
		To:       []string{"rcpt@example.com"},
		Subject:  "Hello",
		Body:     "Body text",
		Password: "secret-password",
	}

	tests := []struct {
		name               string
		requestBody        any
		withIdentity       bool
		setupMocks         func(mockSender *MockSender)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:         "successful send",
			requestBody:  validBody,
			withIdentity: true,
			setupMocks: func(mockSender *MockSender) {
				mockSender.EXPECT().
					Send(gomock.Any(), identity, gomock.Any()).
					Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "message",
		},
		{
			name:               "missing identity",
			requestBody:        validBody,
			withIdentity:       false,
			setupMocks:         func(mockSender *MockSender) {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:               "invalid request body",
			requestBody:        "not-json",
			withIdentity:       true,
			setupMocks:         func(mockSender *MockSender) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:         "validation failure",
			requestBody:  validBody,
			withIdentity: true,
			setupMocks: func(mockSender *MockSender) {
				mockSender.EXPECT().
					Send(gomock.Any(), identity, gomock.Any()).
					Return(fmt.Errorf("%w: at least one recipient is required", services.ErrValidation))
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:         "incorrect password",
			requestBody:  validBody,
			withIdentity: true,
			setupMocks: func(mockSender *MockSender) {
				mockSender.EXPECT().
					Send(gomock.Any(), identity, gomock.Any()).
					Return(services.ErrIncorrectPassword)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:         "caller not on allow-list",
			requestBody:  validBody,
			withIdentity: true,
			setupMocks: func(mockSender *MockSender) {
				mockSender.EXPECT().
					Send(gomock.Any(), identity, gomock.Any()).
					Return(services.ErrForbidden)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedKey:        "error",
		},
		{
			name:         "smtp relay failure",
			requestBody:  validBody,
			withIdentity: true,
			setupMocks: func(mockSender *MockSender) {
				mockSender.EXPECT().
					Send(gomock.Any(), identity, gomock.Any()).
					Return(fmt.Errorf("%w: connection refused", services.ErrDispatchFailed))
			},
			expectedStatusCode: http.StatusBadGateway,
			expectedKey:        "error",
		},
		{
			name:         "internal server error",
			requestBody:  validBody,
			withIdentity: true,
			setupMocks: func(mockSender *MockSender) {
				mockSender.EXPECT().
					Send(gomock.Any(), identity, gomock.Any()).
					Return(assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSender := NewMockSender(ctrl)
			tt.setupMocks(mockSender)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/email/send", bytes.NewReader(bodyBytes))
			if tt.withIdentity {
				req = req.WithContext(middlewares.ContextWithIdentity(req.Context(), identity))
			}
			rr := httptest.NewRecorder()

			handler := NewSendHandler(mockSender)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestSendHandler_ForwardsParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New(), Email: "sender@example.com"}

	mockSender := NewMockSender(ctrl)
	mockSender.EXPECT().
		Send(gomock.Any(), identity, services.SendParams{
			To:       []string{"a@example.com"},
			Cc:       []string{"b@example.com"},
			ReplyTo:  []string{"c@example.com"},
			Subject:  "Subject",
			Body:     "Body",
			Password: "pw",
		}).
		Return(nil)

	body, _ := json.Marshal(SendRequest{
		To:       []string{"a@example.com"},
		Cc:       []string{"b@example.com"},
		ReplyTo:  []string{"c@example.com"},
		Subject:  "Subject",
		Body:     "Body",
		Password: "pw",
	})

	req := httptest.NewRequest(http.MethodPost, "/email/send", bytes.NewReader(body))
	req = req.WithContext(middlewares.ContextWithIdentity(req.Context(), identity))
	rr := httptest.NewRecorder()

	NewSendHandler(mockSender).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
