package timesheet

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"tempora.io/tempora/web/common"
	"tempora.io/tempora/web/middlewares"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export renders the timesheet as an XLSX workbook. Access follows the same
// rules as Find: owner, approver or reviewer only.
func (ep *Endpoint) Export(c *gin.Context) {
	identity, _ := middlewares.CurrentIdentity(c)
	ts, err := ep.engine.GetTimesheet(c.Request.Context(), c.Param("id"), identity.ID, identity.Email)
	if err != nil {
		common.WriteDomainError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Timesheet"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Day", "Date", "Type", "Normal Worked Hours", "Total Hours", "Sick", "Overtime", "Planned Leave", "Remarks"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, d := range ts.Days {
		values := []interface{}{d.Day, d.Date, d.Type, d.NormalWorkedHours, d.TotalHours, d.Sick, d.Overtime, d.PlannedLeave, d.Remarks}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	summaryRow := len(ts.Days) + 3
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	f.SetCellValue(sheet, cell, fmt.Sprintf("Status: %s", ts.Status))

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	filename := fmt.Sprintf("%s-%04d-%02d.xlsx", ts.Name, ts.Year, ts.Month)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
