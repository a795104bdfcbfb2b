//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gear-rental/internal/domain/rental"
	"gear-rental/internal/handler/api"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/status"
	"gear-rental/tests/common/builder"
	"gear-rental/tests/common/httptest"
	statusmock "gear-rental/tests/mock/status"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_Reconcile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *statusmock.MockEngine) {
		ctrl := gomock.NewController(t)
		engine := statusmock.NewMockEngine(ctrl)
		router := gin.New()
		router.POST("/admin/reconcile", api.NewAdminHandler(engine).Reconcile)
		return router, engine
	}

	t.Run("success: report includes corrupt records", func(t *testing.T) {
		router, engine := setup(t)
		moved, corrupt := uuid.New(), uuid.New()
		engine.EXPECT().Reconcile(gomock.Any()).Return(&status.Report{
			RanAt:       builder.FixedNow,
			Scanned:     3,
			Transitions: []status.Transition{{RentalID: moved, From: rental.StatusReserved, To: rental.StatusActive}},
			Skipped:     1,
			Integrity:   []status.RecordFailure{{RentalID: corrupt, Error: "total does not match tiers"}},
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/admin/reconcile", nil, "")

		var resp status.Report
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		assert.Equal(t, 3, resp.Scanned)
		require.Len(t, resp.Transitions, 1)
		assert.Equal(t, moved, resp.Transitions[0].RentalID)
		require.Len(t, resp.Integrity, 1)
		assert.Equal(t, corrupt, resp.Integrity[0].RentalID)
	})

	t.Run("error: 503 when the store is down", func(t *testing.T) {
		router, engine := setup(t)
		engine.EXPECT().Reconcile(gomock.Any()).Return(nil, errs.Wrap(errs.ErrStoreUnavailable, "list open rentals"))

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/admin/reconcile", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}
