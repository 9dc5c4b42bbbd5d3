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

func TestUsersCreateHandler(t *testing.T) {
	identity := models.Identity{
		UserID: uuid.New(),
		Email:  "admin@example.com",
	}

	tests := []struct {
		name               string
		requestBody        any
		withIdentity       bool
		setupMocks         func(mockCreator *MockUsersCreator)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:         "successful bulk create",
			requestBody:  CreateUsersRequest{Emails: []string{"new@example.com", "dup@example.com"}},
			withIdentity: true,
			setupMocks: func(mockCreator *MockUsersCreator) {
				mockCreator.EXPECT().
					Create(gomock.Any(), identity, []string{"new@example.com", "dup@example.com"}).
					Return([]models.CreateUserResult{
						{Email: "new@example.com", Status: models.CreateStatusCreated},
						{Email: "dup@example.com", Status: models.CreateStatusDuplicate},
					}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "results",
		},
		{
			name:               "missing identity",
			requestBody:        CreateUsersRequest{Emails: []string{"new@example.com"}},
			withIdentity:       false,
			setupMocks:         func(mockCreator *MockUsersCreator) {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:               "invalid request body",
			requestBody:        "not-json",
			withIdentity:       true,
			setupMocks:         func(mockCreator *MockUsersCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:         "empty batch",
			requestBody:  CreateUsersRequest{Emails: []string{"  ", ""}},
			withIdentity: true,
			setupMocks: func(mockCreator *MockUsersCreator) {
				mockCreator.EXPECT().
					Create(gomock.Any(), identity, []string{"  ", ""}).
					Return(nil, fmt.Errorf("%w: no valid email addresses provided", services.ErrValidation))
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:         "non-admin caller",
			requestBody:  CreateUsersRequest{Emails: []string{"new@example.com"}},
			withIdentity: true,
			setupMocks: func(mockCreator *MockUsersCreator) {
				mockCreator.EXPECT().
					Create(gomock.Any(), identity, []string{"new@example.com"}).
					Return(nil, services.ErrForbidden)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedKey:        "error",
		},
		{
			name:         "internal server error",
			requestBody:  CreateUsersRequest{Emails: []string{"new@example.com"}},
			withIdentity: true,
			setupMocks: func(mockCreator *MockUsersCreator) {
				mockCreator.EXPECT().
					Create(gomock.Any(), identity, []string{"new@example.com"}).
					Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCreator := NewMockUsersCreator(ctrl)
			tt.setupMocks(mockCreator)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(bodyBytes))
			if tt.withIdentity {
				req = req.WithContext(middlewares.ContextWithIdentity(req.Context(), identity))
			}
			rr := httptest.NewRecorder()

			handler := NewUsersCreateHandler(mockCreator)
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
