package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/seda/schoolpulse/internal/middleware"
	"github.com/seda/schoolpulse/internal/pkg/apperrors"
	"github.com/seda/schoolpulse/internal/sim"
)

// TestHandleAPIError_Mapping verifies each sentinel lands on its
// documented status and error code, including wrapped forms.
func TestHandleAPIError_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown grouping field",
			err:        fmt.Errorf("%q: %w", "postcode", sim.ErrUnknownGroupField),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VAL_001",
		},
		{
			name:       "invalid credentials",
			err:        apperrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_001",
		},
		{
			name:       "undersized credential pool",
			err:        fmt.Errorf("school sch-ashfield: %w", sim.ErrInsufficientCredentials),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SRV_002",
		},
		{
			name:       "unrecognized error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SRV_001",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)

			middleware.HandleAPIError(ctx, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantCode)
		})
	}
}
