package api

import (
	"net/http"

	"gear-rental/internal/domain/equipment"
	reqdto "gear-rental/internal/handler/dto/request"
	resdto "gear-rental/internal/handler/dto/response"
	"gear-rental/internal/handler/httperr"
	"gear-rental/internal/usecase/commands"
	"gear-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	cmds commands.EquipmentCommands
	q    queries.EquipmentQueries
}

func NewEquipmentHandler(cmds commands.EquipmentCommands, q queries.EquipmentQueries) *EquipmentHandler {
	return &EquipmentHandler{cmds: cmds, q: q}
}

var equipmentRules = []httperr.Rule{
	{Target: commands.ErrEquipmentNotFound, Status: http.StatusNotFound, Message: "Equipment not found"},
	{Target: queries.ErrEquipmentNotFound, Status: http.StatusNotFound, Message: "Equipment not found"},
	{Target: equipment.ErrInUse, Status: http.StatusConflict, Message: "Equipment is held by a reserved or active rental"},
	{Target: commands.ErrDomainValidation, Status: http.StatusBadRequest, Message: "Invalid equipment data"},
}

// @Summary List equipment
// @Description Reconciles rental statuses, then lists equipment with the status derived for today
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param type query string false "Equipment type"
// @Param include_inactive query bool false "Include deactivated items"
// @Success 200 {array} resdto.EquipmentResponse
// @Failure 503 {object} httperr.Response
// @Router /equipment [get]
func (h *EquipmentHandler) List(c *gin.Context) {
	filter := queries.EquipmentFilter{
		Type:            c.Query("type"),
		IncludeInactive: c.Query("include_inactive") == "true",
	}
	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err, equipmentRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentViews(views))
}

// @Summary Get equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, equipmentRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentView(view))
}

// @Summary Create equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} resdto.EquipmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /equipment [post]
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Respond(c, err, equipmentRules...)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEquipment(created))
}

// @Summary Update equipment
// @Description Partial update. Setting status to "In Repair" or "Retired" overrides derived availability.
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Param request body reqdto.UpdateEquipmentRequest true "Fields to change"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /equipment/{id} [patch]
func (h *EquipmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "No fields to update", nil)
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		httperr.Respond(c, err, equipmentRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipment(updated))
}

// @Summary Delete equipment
// @Description Refused while a reserved or active rental holds the item. Items with rental history are deactivated instead.
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.DeleteEquipmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, equipmentRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteEquipmentResponse{ID: id, SoftDeleted: result.SoftDeleted})
}

// @Summary Check availability
// @Description Reports whether the item is free for [start, end) and quotes the price
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Param start query string true "Window start (RFC 3339)"
// @Param end query string true "Window end (RFC 3339)"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /equipment/{id}/availability [get]
func (h *EquipmentHandler) Availability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "start and end are required", nil)
		return
	}
	start, ok := parseInstant(c, "start", q.Start)
	if !ok {
		return
	}
	end, ok := parseInstant(c, "end", q.End)
	if !ok {
		return
	}
	view, err := h.q.CheckAvailability(c.Request.Context(), id, start, end)
	if err != nil {
		httperr.Respond(c, err, equipmentRules...)
		return
	}
	c.JSON(http.StatusOK, view)
}
