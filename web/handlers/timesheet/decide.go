package timesheet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tempora.io/tempora/core"
	"tempora.io/tempora/web/common"
	"tempora.io/tempora/web/middlewares"
)

type DecisionDTO struct {
	Status   string `json:"status" binding:"required,oneof=approved reviewed rejected"`
	Comments string `json:"comments"`
}

// Decide records an approve/review/reject decision on a submitted sheet.
// The engine appends the attempt to the history whether or not the caller
// was eligible to change the status.
func (ep *Endpoint) Decide(c *gin.Context) {
	var dto DecisionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	identity, _ := middlewares.CurrentIdentity(c)
	ts, err := ep.engine.Decide(c.Request.Context(), c.Param("id"), identity.Email, core.Status(dto.Status), dto.Comments)
	if err != nil {
		common.WriteDomainError(c, err)
		return
	}

	ep.notify.DecisionRecorded(c.Request.Context(), ts, identity.Email, dto.Status)

	c.JSON(http.StatusOK, common.NewSuccessResponse(ts))
}
