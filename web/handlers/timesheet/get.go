package timesheet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tempora.io/tempora/web/common"
	"tempora.io/tempora/web/middlewares"
)

func (ep *Endpoint) Find(c *gin.Context) {
	identity, _ := middlewares.CurrentIdentity(c)
	ts, err := ep.engine.GetTimesheet(c.Request.Context(), c.Param("id"), identity.ID, identity.Email)
	if err != nil {
		common.WriteDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(ts))
}

func (ep *Endpoint) List(c *gin.Context) {
	var q common.MonthRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	identity, _ := middlewares.CurrentIdentity(c)
	timesheets, err := ep.engine.ListTimesheets(c.Request.Context(), identity.ID, q.Range())
	if err != nil {
		common.WriteDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(timesheets))
}

func (ep *Endpoint) Approvals(c *gin.Context) {
	identity, _ := middlewares.CurrentIdentity(c)
	queue, err := ep.engine.ListApprovalQueue(c.Request.Context(), identity.Email)
	if err != nil {
		common.WriteDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(queue))
}
