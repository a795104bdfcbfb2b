package api

import (
	"net/http"

	"gear-rental/internal/domain/rental"
	reqdto "gear-rental/internal/handler/dto/request"
	resdto "gear-rental/internal/handler/dto/response"
	"gear-rental/internal/handler/httperr"
	"gear-rental/internal/handler/middleware"
	"gear-rental/internal/pkg/clock"
	"gear-rental/internal/usecase/commands"
	"gear-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	cmds  commands.RentalCommands
	q     queries.RentalQueries
	clock clock.Clock
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentalQueries, clock clock.Clock) *RentalHandler {
	return &RentalHandler{cmds: cmds, q: q, clock: clock}
}

var rentalRules = []httperr.Rule{
	{Target: commands.ErrRentalNotFound, Status: http.StatusNotFound, Message: "Rental not found"},
	{Target: queries.ErrRentalNotFound, Status: http.StatusNotFound, Message: "Rental not found"},
	{Target: commands.ErrEquipmentNotFound, Status: http.StatusNotFound, Message: "Equipment not found"},
	{Target: commands.ErrEquipmentNotBookable, Status: http.StatusConflict, Message: "Equipment is inactive or under a manual status"},
	{Target: commands.ErrNoEquipment, Status: http.StatusBadRequest, Message: "At least one equipment item is required"},
	{Target: commands.ErrRentalNotOpen, Status: http.StatusConflict, Message: "Rental is no longer open"},
	{Target: commands.ErrRentalChanged, Status: http.StatusConflict, Message: "Rental was changed by another request"},
	{Target: rental.ErrNotCancellable, Status: http.StatusConflict, Message: "Rental cannot be cancelled from its current status"},
	{Target: rental.ErrVoidExceedsTotal, Status: http.StatusBadRequest, Message: "Void amount cannot exceed total price"},
	{Target: rental.ErrInvalidStatus, Status: http.StatusBadRequest, Message: "Unknown rental status"},
	{Target: commands.ErrDomainValidation, Status: http.StatusBadRequest, Message: "Invalid rental data"},
}

// @Summary List rentals
// @Description Reconciles statuses, then lists rentals with their derived status. Corrupt records carry integrity_error.
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param status query string false "Comma separated statuses (Reserved, Active, Completed, Cancelled)"
// @Param customer_id query string false "Customer ID"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.RentalListResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /rentals [get]
func (h *RentalHandler) List(c *gin.Context) {
	var q reqdto.ListRentalsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter := queries.RentalFilter{
		Statuses: q.Statuses(),
		Limit:    queries.ValidateLimit(q.Limit),
		Offset:   q.Offset,
	}
	if q.CustomerID != "" {
		id, err := uuid.Parse(q.CustomerID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer_id", nil)
			return
		}
		filter.CustomerID = &id
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err, rentalRules...)
		return
	}
	if views == nil {
		views = []*queries.RentalView{}
	}
	c.JSON(http.StatusOK, resdto.RentalListResponse{Items: views, Limit: filter.Limit, Offset: filter.Offset})
}

// @Summary Get rental
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} queries.RentalView
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /rentals/{id} [get]
func (h *RentalHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, rentalRules...)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create rental
// @Description Pre-checks every item. Any conflict rejects the whole request with a per-item report.
// @Description Items are then attached one by one; an item that loses a race is reported in items with partial=true.
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalRequest true "Rental"
// @Success 201 {object} resdto.RentalResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rentals [post]
func (h *RentalHandler) Create(c *gin.Context) {
	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Respond(c, err, rentalRules...)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRentalResult(result, h.clock.Now()))
}

// @Summary Attach equipment
// @Description Attaches each item under a row lock. The response lists the outcome per item.
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.AttachEquipmentRequest true "Equipment IDs"
// @Success 200 {object} resdto.RentalResultResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rentals/{id}/equipment [post]
func (h *RentalHandler) AttachEquipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.AttachEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AttachEquipment(c.Request.Context(), id, req.EquipmentIDs)
	if err != nil {
		httperr.Respond(c, err, rentalRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalResult(result, h.clock.Now()))
}

// @Summary Cancel rental
// @Description Marks the rental Cancelled and records an audit entry. If the audit write fails the status is restored.
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.CancelRentalRequest true "Cancellation"
// @Success 200 {object} resdto.CancelRentalResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /rentals/{id}/cancel [post]
func (h *RentalHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	staffID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CancelRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Cancel(c.Request.Context(), req.ToInput(id, staffID))
	if err != nil {
		httperr.Respond(c, err, rentalRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result, h.clock.Now()))
}

// @Summary Rental calendar
// @Description Rentals whose window intersects [from, to), cancelled ones included, with equipment names
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /calendar [get]
func (h *RentalHandler) Calendar(c *gin.Context) {
	var q reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from and to are required", nil)
		return
	}
	from, ok := parseInstant(c, "from", q.From)
	if !ok {
		return
	}
	to, ok := parseInstant(c, "to", q.To)
	if !ok {
		return
	}
	entries, err := h.q.Calendar(c.Request.Context(), from, to)
	if err != nil {
		httperr.Respond(c, err, rentalRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.CalendarResponse{From: from, To: to, Entries: entries})
}
