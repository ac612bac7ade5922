package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-glossary/internal/models"
	"github.com/sbilibin2017/gw-glossary/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateTermHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updatedAt := time.Now()

	tests := []struct {
		name         string
		keyword      string
		body         string
		mockSetup    func(m *MockTermUpdater)
		expectedCode int
		expectedErr  string
	}{
		{
			name:    "description only",
			keyword: "Texel",
			body:    `{"description":"Texture pixel"}`,
			mockSetup: func(m *MockTermUpdater) {
				m.EXPECT().Update(gomock.Any(), "Texel", models.TermUpdateRequest{Description: strPtr("Texture pixel")}).
					Return(&models.Term{ID: 16, Keyword: "Texel", Description: "Texture pixel", UpdatedAt: &updatedAt}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "empty body object",
			keyword: "Texel",
			body:    `{}`,
			mockSetup: func(m *MockTermUpdater) {
				m.EXPECT().Update(gomock.Any(), "Texel", models.TermUpdateRequest{}).
					Return(&models.Term{ID: 16, Keyword: "Texel", Description: "Texture element", UpdatedAt: &updatedAt}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid json",
			keyword:      "Texel",
			body:         `not json`,
			mockSetup:    func(m *MockTermUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name:    "not found",
			keyword: "Missing",
			body:    `{"description":"x"}`,
			mockSetup: func(m *MockTermUpdater) {
				m.EXPECT().Update(gomock.Any(), "Missing", gomock.Any()).Return(nil, services.ErrTermNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Term with keyword 'Missing' not found",
		},
		{
			name:    "rename collision",
			keyword: "Texel",
			body:    `{"keyword":"Shader"}`,
			mockSetup: func(m *MockTermUpdater) {
				m.EXPECT().Update(gomock.Any(), "Texel", models.TermUpdateRequest{Keyword: strPtr("Shader")}).
					Return(nil, services.ErrTermAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Term with keyword 'Shader' already exists",
		},
		{
			name:    "validation error",
			keyword: "Texel",
			body:    `{"description":""}`,
			mockSetup: func(m *MockTermUpdater) {
				m.EXPECT().Update(gomock.Any(), "Texel", gomock.Any()).
					Return(nil, &models.ValidationError{Field: "description", Tag: "required", Message: "description must not be empty"})
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "description must not be empty",
		},
		{
			name:    "internal server error",
			keyword: "Texel",
			body:    `{"description":"x"}`,
			mockSetup: func(m *MockTermUpdater) {
				m.EXPECT().Update(gomock.Any(), "Texel", gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTermUpdater(ctrl)
			tt.mockSetup(mockSvc)

			req := chiRequest(http.MethodPut, "/terms/"+tt.keyword, bytes.NewBufferString(tt.body), map[string]string{"keyword": tt.keyword})
			rr := httptest.NewRecorder()
			NewUpdateTermHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			var term models.Term
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &term))
			assert.Equal(t, tt.keyword, term.Keyword)
			assert.NotNil(t, term.UpdatedAt)
		})
	}
}
