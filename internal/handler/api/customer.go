package api

import (
	"net/http"

	"gear-rental/internal/domain/customer"
	reqdto "gear-rental/internal/handler/dto/request"
	resdto "gear-rental/internal/handler/dto/response"
	"gear-rental/internal/handler/httperr"
	"gear-rental/internal/usecase/commands"
	"gear-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

var customerRules = []httperr.Rule{
	{Target: queries.ErrCustomerNotFound, Status: http.StatusNotFound, Message: "Customer not found"},
	{Target: customer.ErrInvalidEmail, Status: http.StatusBadRequest, Message: "Invalid email"},
	{Target: customer.ErrInvalidPhone, Status: http.StatusBadRequest, Message: "Invalid phone number"},
	{Target: commands.ErrDomainValidation, Status: http.StatusBadRequest, Message: "Invalid customer data"},
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name or email contains"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.CustomerResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var page struct {
		Limit  int `form:"limit" binding:"omitempty,min=1"`
		Offset int `form:"offset" binding:"omitempty,min=0"`
	}
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), queries.CustomerFilter{
		Search: c.Query("q"),
		Limit:  queries.ValidateLimit(page.Limit),
		Offset: page.Offset,
	})
	if err != nil {
		httperr.Respond(c, err, customerRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerViews(views))
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, customerRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Upsert customer
// @Description Creates the customer or updates the one with the same email
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 200 {object} resdto.UpsertCustomerResponse
// @Success 201 {object} resdto.UpsertCustomerResponse
// @Failure 400 {object} httperr.Response
// @Router /customers [post]
func (h *CustomerHandler) Upsert(c *gin.Context) {
	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Upsert(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Respond(c, err, customerRules...)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.UpsertCustomerResponse{
		Customer: resdto.FromCustomer(result.Customer),
		Created:  result.Created,
	})
}
