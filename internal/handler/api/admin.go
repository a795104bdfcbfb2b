package api

import (
	"net/http"

	"gear-rental/internal/handler/httperr"
	"gear-rental/internal/usecase/status"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	engine status.Engine
}

func NewAdminHandler(engine status.Engine) *AdminHandler {
	return &AdminHandler{engine: engine}
}

// @Summary Reconcile rental statuses
// @Description Writes the derived status of every open rental. Corrupt records are reported, not fatal.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} status.Report
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/reconcile [post]
func (h *AdminHandler) Reconcile(c *gin.Context) {
	report, err := h.engine.Reconcile(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
