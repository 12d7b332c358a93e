package template

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tempora.io/tempora/core"
	"tempora.io/tempora/model"
	"tempora.io/tempora/web/common"
	"tempora.io/tempora/web/middlewares"
)

type Endpoint struct {
	engine *core.Engine
}

func Register(r *gin.RouterGroup, engine *core.Engine) {
	ep := &Endpoint{engine: engine}
	read := middlewares.RequireRead()
	write := middlewares.RequireWrite()

	r.GET("/templates", read, ep.List)
	r.GET("/templates/:id", read, ep.Find)
	r.POST("/templates", write, ep.Create)
	r.PUT("/templates/:id", write, ep.Update)
	r.DELETE("/templates/:id", write, ep.Delete)
}

type TemplateCreateDTO struct {
	Name  string              `json:"name" binding:"required"`
	Month int                 `json:"month" binding:"required,min=1,max=12"`
	Year  int                 `json:"year" binding:"required"`
	Days  []model.TemplateDay `json:"days"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto TemplateCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	tpl, err := ep.engine.CreateTemplate(c.Request.Context(), &model.Template{
		Name:  dto.Name,
		Month: dto.Month,
		Year:  dto.Year,
		Days:  dto.Days,
	})
	if err != nil {
		common.WriteDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(tpl))
}

type TemplateUpdateDTO struct {
	Name  *string             `json:"name,omitempty"`
	Month *int                `json:"month,omitempty" binding:"omitempty,min=1,max=12"`
	Year  *int                `json:"year,omitempty"`
	Days  []model.TemplateDay `json:"days,omitempty"`
}

func (ep *Endpoint) Update(c *gin.Context) {
	var dto TemplateUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	tpl, err := ep.engine.UpdateTemplate(c.Request.Context(), c.Param("id"), core.TemplatePatch{
		Name:  dto.Name,
		Month: dto.Month,
		Year:  dto.Year,
		Days:  dto.Days,
	})
	if err != nil {
		common.WriteDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(tpl))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	if err := ep.engine.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		common.WriteDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"message": "success"}))
}
