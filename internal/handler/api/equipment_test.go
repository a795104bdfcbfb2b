//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/handler/api"
	reqdto "gear-rental/internal/handler/dto/request"
	resdto "gear-rental/internal/handler/dto/response"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/usecase/commands"
	"gear-rental/internal/usecase/queries"
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

type EquipmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEquipmentCommands
	mockQueries  *queriesmock.MockEquipmentQueries
}

func (s *EquipmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEquipmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEquipmentQueries(s.mockCtrl)
	handler := api.NewEquipmentHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/equipment", handler.List)
	s.router.GET("/equipment/:id", handler.Get)
	s.router.POST("/equipment", handler.Create)
	s.router.PATCH("/equipment/:id", handler.Update)
	s.router.DELETE("/equipment/:id", handler.Delete)
	s.router.GET("/equipment/:id/availability", handler.Availability)
}

func (s *EquipmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEquipmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(EquipmentHandlerTestSuite))
}

func createEquipmentRequest() reqdto.CreateEquipmentRequest {
	return reqdto.CreateEquipmentRequest{
		Name:     "Sony FX3",
		Type:     "camera",
		Quantity: 1,
		RateTiers: []reqdto.RateTierRequest{
			{Label: "day", Days: 1, PriceCents: 5000},
			{Label: "week", Days: 7, PriceCents: 25000},
		},
	}
}

func (s *EquipmentHandlerTestSuite) TestCreate() {
	url := "/equipment"

	s.Run("success: 201 with the stored item", func() {
		req := createEquipmentRequest()
		created, err := builder.NewEquipmentBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Create(gomock.Any(), req.ToInput()).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var resp resdto.EquipmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("Available", resp.Status)
		s.Len(resp.RateTiers, 2)
	})

	s.Run("success: quantity defaults to one", func() {
		req := createEquipmentRequest()
		req.Quantity = 0
		expected := req.ToInput()
		s.Equal(1, expected.Quantity)
		created, err := builder.NewEquipmentBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Create(gomock.Any(), expected).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name", mutate: testutil.Field("name", nil)},
			{name: "missing field: type", mutate: testutil.Field("type", nil)},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1)},
			{name: "tier without days", mutate: testutil.Field("rate_tiers", []map[string]any{{"label": "day", "price_cents": 100}})},
			{name: "several fields at once", mutate: testutil.Fields(map[string]any{"name": nil, "quantity": -2})},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), createEquipmentRequest(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 when tiers are out of order", func() {
		req := createEquipmentRequest()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(equipment.ErrTiersOutOfOrder, commands.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid equipment data")
	})
}

func (s *EquipmentHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/equipment/" + id.String()

	s.Run("success: manual status is passed through", func() {
		status := "In Repair"
		updated, err := builder.NewEquipmentBuilder().WithStatus(status).BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Update(gomock.Any(), id, commands.EquipmentPatch{Status: &status}).Return(updated, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": status}, "")

		var resp resdto.EquipmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(status, resp.ManualStatus)
	})

	s.Run("error: 400 on an empty patch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No fields to update")
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), commands.ErrEquipmentNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "FX6"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Equipment not found")
	})
}

func (s *EquipmentHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/equipment/" + id.String()

	s.Run("success: reports soft delete", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(&commands.DeleteEquipmentResult{SoftDeleted: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var resp resdto.DeleteEquipmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.SoftDeleted)
	})

	s.Run("error: 409 while a rental holds the item", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil, errs.Wrap(equipment.ErrInUse, uuid.NewString()))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "held by")
	})
}

func (s *EquipmentHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	start := builder.FixedNow
	end := start.Add(48 * time.Hour)
	url := "/equipment/" + id.String() + "/availability?start=" + start.Format(time.RFC3339) + "&end=" + end.Format(time.RFC3339)

	s.Run("success: returns availability and quote", func() {
		holder := uuid.New()
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), id, start, end).
			Return(&queries.AvailabilityView{EquipmentID: id, Start: start, End: end, ConflictingRentalIDs: []uuid.UUID{holder}, QuoteCents: 10000}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var resp queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.False(resp.Available)
		s.Equal([]uuid.UUID{holder}, resp.ConflictingRentalIDs)
		s.Equal(int64(10000), resp.QuoteCents)
	})

	s.Run("error: 400 on inverted window", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), id, start, end).
			Return(nil, errs.NewInvalidWindowError(start, end))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rental window")
	})

	s.Run("error: 400 without a window", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment/"+id.String()+"/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "start and end are required")
	})
}

func (s *EquipmentHandlerTestSuite) TestList() {
	s.Run("success: derived status is returned next to the manual one", func() {
		view := &queries.EquipmentView{ID: uuid.New(), Name: "Sony FX3", Status: "Rented", ManualStatus: "Available", Active: true}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.EquipmentFilter{Type: "camera"}).
			Return([]*queries.EquipmentView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment?type=camera", nil, "")

		var resp []resdto.EquipmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal("Rented", resp[0].Status)
		s.Equal("Available", resp[0].ManualStatus)
		s.NotNil(resp[0].RateTiers)
	})
}
