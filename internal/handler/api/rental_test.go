//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"gear-rental/internal/domain/money"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/handler/api"
	reqdto "gear-rental/internal/handler/dto/request"
	resdto "gear-rental/internal/handler/dto/response"
	"gear-rental/internal/handler/httperr"
	"gear-rental/internal/pkg/clock"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/commands"
	"gear-rental/internal/usecase/queries"
	"gear-rental/internal/usecase/readmodel"
	"gear-rental/tests/common/builder"
	"gear-rental/tests/common/httptest"
	"gear-rental/tests/common/testutil"
	commandsmock "gear-rental/tests/mock/commands"
	queriesmock "gear-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentalQueries
	staffID      uuid.UUID
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.staffID = uuid.New()
	handler := api.NewRentalHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(builder.FixedNow))

	// stands in for RequireAuth
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.staffID)
		c.Next()
	})
	s.router.GET("/rentals", handler.List)
	s.router.GET("/rentals/:id", handler.Get)
	s.router.POST("/rentals", handler.Create)
	s.router.POST("/rentals/:id/equipment", handler.AttachEquipment)
	s.router.POST("/rentals/:id/cancel", handler.Cancel)
	s.router.GET("/calendar", handler.Calendar)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func (s *RentalHandlerTestSuite) createRequest(ids ...uuid.UUID) reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		Start:        builder.FixedNow.Add(24 * time.Hour),
		End:          builder.FixedNow.Add(72 * time.Hour),
		EquipmentIDs: ids,
		Customer:     builder.NewCustomerBuilder().BuildDTO(),
	}
}

func (s *RentalHandlerTestSuite) rentalResult(items ...commands.ItemResult) *commands.RentalResult {
	r, err := builder.NewRentalBuilder().BuildDomain()
	s.Require().NoError(err)
	c, err := builder.NewCustomerBuilder().BuildDomain()
	s.Require().NoError(err)
	return &commands.RentalResult{Rental: r, Customer: c, Items: items}
}

func (s *RentalHandlerTestSuite) TestCreate() {
	url := "/rentals"
	first, second, third := uuid.New(), uuid.New(), uuid.New()

	s.Run("success: 201 with every item attached", func() {
		req := s.createRequest(first, second)
		s.mockCommands.EXPECT().Create(gomock.Any(), req.ToInput()).
			Return(s.rentalResult(
				commands.ItemResult{EquipmentID: first},
				commands.ItemResult{EquipmentID: second},
			), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var resp resdto.RentalResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.False(resp.Partial)
		s.Len(resp.Items, 2)
		s.Equal("Reserved", resp.Rental.Status)
		s.Equal("jane@example.com", resp.Customer.Email)
	})

	s.Run("success: 201 with a per-item report when one item loses a race", func() {
		req := s.createRequest(first, second, third)
		holder := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), req.ToInput()).
			Return(s.rentalResult(
				commands.ItemResult{EquipmentID: first},
				commands.ItemResult{EquipmentID: second, Err: errs.NewConflictError(second, []uuid.UUID{holder})},
				commands.ItemResult{EquipmentID: third},
			), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var resp resdto.RentalResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.True(resp.Partial)
		s.True(resp.Items[0].Attached)
		s.False(resp.Items[1].Attached)
		s.Equal([]uuid.UUID{holder}, resp.Items[1].ConflictingRentalIDs)
		s.True(resp.Items[2].Attached)
	})

	s.Run("error: 409 with every conflicting item when the pre-check fails", func() {
		req := s.createRequest(first, second)
		report := &errs.ConflictReportError{Conflicts: []*errs.ConflictError{
			errs.NewConflictError(first, []uuid.UUID{uuid.New()}),
			errs.NewConflictError(second, []uuid.UUID{uuid.New()}),
		}}
		s.mockCommands.EXPECT().Create(gomock.Any(), req.ToInput()).Return(nil, report)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
		var details []httperr.ConflictDetail
		httptest.DecodeDetail(s.T(), body, &details)
		s.Len(details, 2)
		s.Equal(first, details[0].EquipmentID)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		req := s.createRequest(first)
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "inverted window", err: errs.NewInvalidWindowError(req.End, req.Start), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid rental window"},
			{name: "equipment not found", err: errs.Mark(errors.New("no rows"), commands.ErrEquipmentNotFound), expectedStatus: http.StatusNotFound, expectedMsg: "Equipment not found"},
			{name: "equipment not bookable", err: errs.Wrap(commands.ErrEquipmentNotBookable, first.String()), expectedStatus: http.StatusConflict, expectedMsg: "manual status"},
			{name: "invalid customer", err: errs.Mark(errors.New("bad email"), commands.ErrDomainValidation), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid rental data"},
			{name: "store unavailable", err: errs.NewStoreUnavailableError("create rental", errors.New("connection refused")), expectedStatus: http.StatusServiceUnavailable, expectedMsg: "temporarily unavailable"},
			{name: "unexpected", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), req.ToInput()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "connection refused")
			})
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		base := s.createRequest(first)
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: equipment_ids", mutate: testutil.Field("equipment_ids", nil)},
			{name: "empty equipment_ids", mutate: testutil.Field("equipment_ids", []string{})},
			{name: "missing field: start", mutate: testutil.Field("start", nil)},
			{name: "negative total override", mutate: testutil.Field("total_price_cents", -1)},
			{name: "customer without email", mutate: func(m map[string]any) {
				m["customer"].(map[string]any)["email"] = ""
			}},
			{name: "customer with invalid email", mutate: func(m map[string]any) {
				m["customer"].(map[string]any)["email"] = "not-an-email"
			}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), base, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *RentalHandlerTestSuite) TestAttachEquipment() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/equipment"
	item := uuid.New()

	s.Run("success: 200 with item results", func() {
		s.mockCommands.EXPECT().AttachEquipment(gomock.Any(), rentalID, []uuid.UUID{item}).
			Return(s.rentalResult(commands.ItemResult{EquipmentID: item, Err: commands.ErrAlreadyAttached}), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.AttachEquipmentRequest{EquipmentIDs: []uuid.UUID{item}}, "")

		var resp resdto.RentalResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Partial)
		s.Equal(commands.ErrAlreadyAttached.Error(), resp.Items[0].Error)
	})

	s.Run("error: 409 when the rental is closed", func() {
		s.mockCommands.EXPECT().AttachEquipment(gomock.Any(), rentalID, []uuid.UUID{item}).
			Return(nil, commands.ErrRentalNotOpen)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.AttachEquipmentRequest{EquipmentIDs: []uuid.UUID{item}}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer open")
	})

	s.Run("error: 400 on malformed rental id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals/not-a-uuid/equipment", reqdto.AttachEquipmentRequest{EquipmentIDs: []uuid.UUID{item}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *RentalHandlerTestSuite) TestCancel() {
	target, err := builder.NewRentalBuilder().BuildDomain()
	s.Require().NoError(err)
	url := "/rentals/" + target.ID().String() + "/cancel"
	req := reqdto.CancelRentalRequest{VoidAmountCents: 2500, Reason: "customer request"}

	s.Run("success: 200 with rental and audit record", func() {
		void, err := money.New(2500)
		s.Require().NoError(err)
		audit, err := rental.NewCancellation(target.ID(), s.staffID, void, req.Reason, builder.FixedNow)
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Cancel(gomock.Any(), req.ToInput(target.ID(), s.staffID)).
			Return(&commands.CancelResult{Rental: target, Cancellation: audit}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var resp resdto.CancelRentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(2500), resp.Cancellation.VoidCents)
		s.Equal(s.staffID, resp.Cancellation.CancelledBy)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		rolledBack := &errs.PartialFailureError{
			Op:         "cancel_rental",
			Succeeded:  []string{"cancel rental"},
			Failed:     []errs.SubFailure{{Name: "record cancellation", Err: errs.NewStoreUnavailableError("insert", errors.New("disk full"))}},
			RolledBack: []string{"cancel rental"},
		}
		stuck := &errs.PartialFailureError{
			Op:        "cancel_rental",
			Succeeded: []string{"cancel rental"},
			Failed: []errs.SubFailure{
				{Name: "record cancellation", Err: errors.New("insert failed")},
				{Name: "compensate cancel rental", Err: errors.New("update failed")},
			},
		}
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", err: errs.Mark(errors.New("no rows"), commands.ErrRentalNotFound), expectedStatus: http.StatusNotFound, expectedMsg: "Rental not found"},
			{name: "already cancelled", err: errs.Mark(rental.ErrNotCancellable, commands.ErrDomainValidation), expectedStatus: http.StatusConflict, expectedMsg: "cannot be cancelled"},
			{name: "void exceeds total", err: errs.Mark(rental.ErrVoidExceedsTotal, commands.ErrDomainValidation), expectedStatus: http.StatusBadRequest, expectedMsg: "Void amount"},
			{name: "changed concurrently", err: errs.Mark(errors.New("0 rows"), commands.ErrRentalChanged), expectedStatus: http.StatusConflict, expectedMsg: "changed by another request"},
			{name: "audit failed and rolled back", err: rolledBack, expectedStatus: http.StatusInternalServerError, expectedMsg: "was rolled back"},
			{name: "rollback failed", err: stuck, expectedStatus: http.StatusInternalServerError, expectedMsg: "could not be fully rolled back"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "disk full")
			})
		}
	})

	s.Run("error: 400 when reason is missing", func() {
		body := testutil.DtoMap(s.T(), req, testutil.Field("reason", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RentalHandlerTestSuite) TestList() {
	s.Run("success: status filter is split and limit defaulted", func() {
		view := &queries.RentalView{ID: uuid.New(), Status: "Active"}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.RentalFilter{
			Statuses: []string{"Reserved", "Active"},
			Limit:    queries.DefaultLimit,
		}).Return([]*queries.RentalView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals?status=Reserved,Active", nil, "")

		var resp resdto.RentalListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Items, 1)
		s.Equal(queries.DefaultLimit, resp.Limit)
	})

	s.Run("error: 400 on unknown status", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(rental.ErrInvalidStatus, "reserved"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals?status=reserved", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown rental status")
	})

	s.Run("error: 400 on malformed customer_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals?customer_id=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "customer_id")
	})

	s.Run("error: 503 when the store is down", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.NewStoreUnavailableError("reconcile", errors.New("timeout")))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

func (s *RentalHandlerTestSuite) TestGet() {
	s.Run("error: 500 on a corrupt record", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.NewDataIntegrityError("rental", id, "start_at", "missing timestamp"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "start_at")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(errors.New("no rows"), queries.ErrRentalNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rental not found")
	})
}

func (s *RentalHandlerTestSuite) TestCalendar() {
	from := builder.FixedNow
	to := from.Add(7 * 24 * time.Hour)

	s.Run("success: returns entries in range", func() {
		entry := readmodel.CalendarEntry{RentalID: uuid.New(), Title: "Jane Doe", Status: "Reserved", EquipmentNames: []string{"Sony FX3"}}
		s.mockQueries.EXPECT().Calendar(gomock.Any(), from, to).Return([]readmodel.CalendarEntry{entry}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/calendar?from="+from.Format(time.RFC3339)+"&to="+to.Format(time.RFC3339), nil, "")

		var resp resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Entries, 1)
		s.Equal([]string{"Sony FX3"}, resp.Entries[0].EquipmentNames)
	})

	s.Run("error: 400 on missing or malformed range", func() {
		for _, path := range []string{
			"/calendar",
			"/calendar?from=2025-06-01&to=2025-06-08",
			"/calendar?from=" + from.Format(time.RFC3339),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 400 on inverted range", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), to, from).Return(nil, errs.NewInvalidWindowError(to, from))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/calendar?from="+to.Format(time.RFC3339)+"&to="+from.Format(time.RFC3339), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rental window")
	})
}
