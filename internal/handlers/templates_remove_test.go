package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-mailer/internal/middlewares"
	"github.com/sbilibin2017/gw-mailer/internal/models"
	"github.com/sbilibin2017/gw-mailer/internal/services"
)

func TestTemplateRemoveHandler(t *testing.T) {
	identity := models.Identity{
		UserID: uuid.New(),
		Email:  "admin@example.com",
	}
	templateID := uuid.New()

	tests := []struct {
		name               string
		targetID           string
		withIdentity       bool
		setupMocks         func(mockRemover *MockTemplateRemover)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:         "successful remove",
			targetID:     templateID.String(),
			withIdentity: true,
			setupMocks: func(mockRemover *MockTemplateRemover) {
				mockRemover.EXPECT().
					Remove(gomock.Any(), identity, templateID).
					Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "message",
		},
		{
			name:               "missing identity",
			targetID:           templateID.String(),
			withIdentity:       false,
			setupMocks:         func(mockRemover *MockTemplateRemover) {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:               "malformed id",
			targetID:           "not-a-uuid",
			withIdentity:       true,
			setupMocks:         func(mockRemover *MockTemplateRemover) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:         "non-admin caller",
			targetID:     templateID.String(),
			withIdentity: true,
			setupMocks: func(mockRemover *MockTemplateRemover) {
				mockRemover.EXPECT().
					Remove(gomock.Any(), identity, templateID).
					Return(services.ErrForbidden)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedKey:        "error",
		},
		{
			name:         "template not found",
			targetID:     templateID.String(),
			withIdentity: true,
			setupMocks: func(mockRemover *MockTemplateRemover) {
				mockRemover.EXPECT().
					Remove(gomock.Any(), identity, templateID).
					Return(services.ErrTemplateNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:         "internal server error",
			targetID:     templateID.String(),
			withIdentity: true,
			setupMocks: func(mockRemover *MockTemplateRemover) {
				mockRemover.EXPECT().
					Remove(gomock.Any(), identity, templateID).
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

			mockRemover := NewMockTemplateRemover(ctrl)
			tt.setupMocks(mockRemover)

			router := chi.NewRouter()
			router.Delete("/templates/{id}", NewTemplateRemoveHandler(mockRemover))

			req := httptest.NewRequest(http.MethodDelete, "/templates/"+tt.targetID, nil)
			if tt.withIdentity {
				req = req.WithContext(middlewares.ContextWithIdentity(req.Context(), identity))
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
