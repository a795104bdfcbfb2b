package httperr

import (
	"log/slog"
	"net/http"

	"gear-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the gin context for the request log and
// writes only msg and detail to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := NewResponse(status, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Rule maps a usecase sentinel to a status and public message.
type Rule struct {
	Target  error
	Status  int
	Message string
}

type ConflictDetail struct {
	EquipmentID          uuid.UUID   `json:"equipment_id"`
	ConflictingRentalIDs []uuid.UUID `json:"conflicting_rental_ids"`
}

type FailureDetail struct {
	Op          string   `json:"op"`
	Succeeded   []string `json:"succeeded,omitempty"`
	Failed      []string `json:"failed,omitempty"`
	RolledBack  []string `json:"rolled_back,omitempty"`
	Compensated bool     `json:"compensated"`
}

// Respond renders err. A partial failure wraps its sub-errors, so it is matched
// before the handler rules and the rest of the taxonomy.
// Store and integrity failures never expose their cause.
func Respond(c *gin.Context, err error, rules ...Rule) {
	var partial *errs.PartialFailureError
	if errs.As(err, &partial) {
		slog.Error("operation partially failed", "path", c.Request.URL.Path, "error", err.Error())
		detail := failureDetail(partial)
		msg := "Operation failed and was rolled back"
		if !detail.Compensated {
			msg = "Operation failed and could not be fully rolled back"
		}
		AbortWithError(c, http.StatusInternalServerError, err, msg, detail)
		return
	}

	for _, r := range rules {
		if errs.Is(err, r.Target) {
			AbortWithError(c, r.Status, err, r.Message, nil)
			return
		}
	}

	var (
		window   *errs.InvalidWindowError
		report   *errs.ConflictReportError
		conflict *errs.ConflictError
	)
	switch {
	case errs.As(err, &window):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid rental window: start must be before end", gin.H{
			"start": window.Start,
			"end":   window.End,
		})
	case errs.As(err, &report):
		details := make([]ConflictDetail, 0, len(report.Conflicts))
		for _, ce := range report.Conflicts {
			details = append(details, toConflictDetail(ce))
		}
		AbortWithError(c, http.StatusConflict, err, "Equipment is not available for the requested window", details)
	case errs.As(err, &conflict):
		AbortWithError(c, http.StatusConflict, err, "Equipment is not available for the requested window",
			[]ConflictDetail{toConflictDetail(conflict)})
	case errs.Is(err, errs.ErrStoreUnavailable):
		slog.Error("store unavailable", "path", c.Request.URL.Path, "error", err.Error())
		AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	case errs.Is(err, errs.ErrDataIntegrity):
		slog.Error("stored record failed integrity check", "path", c.Request.URL.Path, "error", err.Error())
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	default:
		slog.Error("unhandled error", "path", c.Request.URL.Path, "error", err.Error())
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func toConflictDetail(ce *errs.ConflictError) ConflictDetail {
	return ConflictDetail{
		EquipmentID:          ce.EquipmentID,
		ConflictingRentalIDs: ce.ConflictingRentalIDs,
	}
}

func failureDetail(pf *errs.PartialFailureError) FailureDetail {
	d := FailureDetail{
		Op:          pf.Op,
		Succeeded:   pf.Succeeded,
		RolledBack:  pf.RolledBack,
		Compensated: len(pf.Failed) <= 1,
	}
	for _, f := range pf.Failed {
		d.Failed = append(d.Failed, f.Name)
	}
	return d
}
