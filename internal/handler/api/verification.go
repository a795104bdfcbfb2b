package api

import (
	"net/http"
	"strconv"

	"gear-rental/internal/domain/verification"
	reqdto "gear-rental/internal/handler/dto/request"
	resdto "gear-rental/internal/handler/dto/response"
	"gear-rental/internal/handler/httperr"
	"gear-rental/internal/pkg/imaging"
	"gear-rental/internal/usecase/commands"
	"gear-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	cmds commands.VerificationCommands
	q    queries.VerificationQueries
}

func NewVerificationHandler(cmds commands.VerificationCommands, q queries.VerificationQueries) *VerificationHandler {
	return &VerificationHandler{cmds: cmds, q: q}
}

var verificationRules = []httperr.Rule{
	{Target: commands.ErrRentalNotFound, Status: http.StatusNotFound, Message: "Rental not found"},
	{Target: queries.ErrVerificationNotFound, Status: http.StatusNotFound, Message: "Verification not found"},
	{Target: commands.ErrVerificationExists, Status: http.StatusConflict, Message: "Verification already captured for this rental"},
	{Target: imaging.ErrTooLarge, Status: http.StatusRequestEntityTooLarge, Message: "Signature image is too large"},
	{Target: commands.ErrInvalidSignature, Status: http.StatusBadRequest, Message: "Signature must be a PNG or JPEG image"},
	{Target: verification.ErrInvalidIDType, Status: http.StatusBadRequest, Message: "Unknown id_type"},
	{Target: commands.ErrDomainValidation, Status: http.StatusBadRequest, Message: "Invalid verification data"},
}

// @Summary Capture verification
// @Description Stores the customer's ID details and signature image. One capture per rental.
// @Tags verification
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param id_type formData string true "drivers_license, passport, national_id or other"
// @Param id_number formData string true "ID number"
// @Param signature formData file true "Signature image (PNG or JPEG)"
// @Success 201 {object} resdto.VerificationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Router /rentals/{id}/verification [post]
func (h *VerificationHandler) Capture(c *gin.Context) {
	rentalID, ok := pathID(c)
	if !ok {
		return
	}
	var form reqdto.VerificationForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "id_type and id_number are required", nil)
		return
	}
	header, err := c.FormFile("signature")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "signature file is required", nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "signature file could not be read", nil)
		return
	}
	defer file.Close()

	captured, err := h.cmds.Capture(c.Request.Context(), commands.CaptureVerificationInput{
		RentalID:  rentalID,
		IDType:    form.IDType,
		IDNumber:  form.IDNumber,
		Signature: file,
	})
	if err != nil {
		httperr.Respond(c, err, verificationRules...)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVerification(captured))
}

// @Summary Get verification
// @Description The ID number is masked
// @Tags verification
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} queries.VerificationView
// @Failure 404 {object} httperr.Response
// @Router /rentals/{id}/verification [get]
func (h *VerificationHandler) Get(c *gin.Context) {
	rentalID, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByRentalID(c.Request.Context(), rentalID)
	if err != nil {
		httperr.Respond(c, err, verificationRules...)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get signature image
// @Tags verification
// @Produce png
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Router /rentals/{id}/verification/signature [get]
func (h *VerificationHandler) Signature(c *gin.Context) {
	rentalID, ok := pathID(c)
	if !ok {
		return
	}
	sig, err := h.q.GetSignature(c.Request.Context(), rentalID)
	if err != nil {
		httperr.Respond(c, err, verificationRules...)
		return
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.Header("X-Image-Width", strconv.Itoa(sig.Width))
	c.Header("X-Image-Height", strconv.Itoa(sig.Height))
	c.Data(http.StatusOK, sig.ContentType, sig.Data)
}
