package timesheet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tempora.io/tempora/core"
	"tempora.io/tempora/infrastructure/communication"
	"tempora.io/tempora/model"
	"tempora.io/tempora/web/common"
	"tempora.io/tempora/web/middlewares"
)

type Endpoint struct {
	engine *core.Engine
	notify *communication.Notifier
}

func Register(r *gin.RouterGroup, engine *core.Engine, notify *communication.Notifier) {
	ep := &Endpoint{engine: engine, notify: notify}
	read := middlewares.RequireRead()
	write := middlewares.RequireWrite()

	r.GET("/timesheets/approvals", read, ep.Approvals)
	r.GET("/timesheets", read, ep.List)
	r.GET("/timesheets/:id", read, ep.Find)
	r.GET("/timesheets/:id/export", read, ep.Export)
	r.POST("/timesheets", write, ep.Create)
	r.PUT("/timesheets/approvals/:id", write, ep.Decide)
	r.PUT("/timesheets/:id", write, ep.Update)
	r.DELETE("/timesheets/:id", write, ep.Delete)
}

type TimesheetCreateDTO struct {
	TemplateID string `json:"templateId" binding:"required"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto TimesheetCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	identity, _ := middlewares.CurrentIdentity(c)
	ts, err := ep.engine.CreateTimesheet(c.Request.Context(), dto.TemplateID, identity.ID, identity.Email)
	if err != nil {
		common.WriteDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(ts))
}

type TimesheetUpdateDTO struct {
	Status   *string     `json:"status,omitempty"`
	Approver *string     `json:"approver,omitempty"`
	Reviewer *string     `json:"reviewer,omitempty"`
	Days     []model.Day `json:"days,omitempty"`
}

func (ep *Endpoint) Update(c *gin.Context) {
	var dto TimesheetUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	identity, _ := middlewares.CurrentIdentity(c)
	ts, err := ep.engine.UpdateTimesheet(c.Request.Context(), c.Param("id"), identity.ID, core.UpdatePatch{
		Status:   dto.Status,
		Approver: dto.Approver,
		Reviewer: dto.Reviewer,
		Days:     dto.Days,
	})
	if err != nil {
		common.WriteDomainError(c, err)
		return
	}

	if ts.Status == string(core.StatusSubmitted) {
		ep.notify.TimesheetSubmitted(c.Request.Context(), ts)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(ts))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	identity, _ := middlewares.CurrentIdentity(c)
	if err := ep.engine.DeleteTimesheet(c.Request.Context(), c.Param("id"), identity.ID); err != nil {
		common.WriteDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"message": "success"}))
}
