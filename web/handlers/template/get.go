package template

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tempora.io/tempora/web/common"
)

func (ep *Endpoint) Find(c *gin.Context) {
	tpl, err := ep.engine.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.WriteDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(tpl))
}

func (ep *Endpoint) List(c *gin.Context) {
	var q common.MonthRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	templates, err := ep.engine.ListTemplates(c.Request.Context(), q.Range())
	if err != nil {
		common.WriteDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(templates))
}
