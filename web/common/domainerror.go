package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tempora.io/tempora/core"
)

// WriteDomainError maps engine errors onto the HTTP response conventions:
// 404 for missing records, 409 with the conflicting record's id and name,
// 403 for forbidden access, 500 otherwise.
func WriteDomainError(c *gin.Context, err error) {
	var nf *core.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, NewErrorResponse(nf.Resource+" not found"))
		return
	}

	var dup *core.DuplicateError
	if errors.As(err, &dup) {
		message := dup.Resource + " already exists."
		switch dup.Resource {
		case "Timesheet":
			message = "Timesheet for selected Template Already exists."
		case "Template":
			message = "Template for selected month Already exists."
		}
		c.JSON(http.StatusConflict, NewConflictResponse(message, gin.H{
			"existing" + dup.Resource + "Id":   dup.ExistingID,
			"existing" + dup.Resource + "Name": dup.ExistingName,
		}))
		return
	}

	var fb *core.ForbiddenError
	if errors.As(err, &fb) {
		c.JSON(http.StatusForbidden, NewErrorResponse("Access to "+fb.Resource+" Forbidden"))
		return
	}

	c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
}
