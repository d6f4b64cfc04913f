package reports

import (
	"fmt"
	"net/http"
	"strconv"

	"daycare-api/internal/apperr"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *ReportService
}

func (rc *ReportController) FinancialSummary(c *gin.Context) {
	data, name, err := rc.ReportService.FinancialSummaryXLSX(c.Query("from"), c.Query("to"))
	if err != nil {
		apperr.Write(c, err)
		return
	}

	if c.Query("archive") == "true" {
		url, downloadURL, err := rc.ReportService.Archive(c.Request.Context(), name, data)
		if err != nil {
			apperr.Write(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":      "Report archived successfully",
			"url":          url,
			"download_url": downloadURL,
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (rc *ReportController) ListArchived(c *gin.Context) {
	names, err := rc.ReportService.ListArchived(c.Request.Context())
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": names})
}

func (rc *ReportController) AttendanceRegister(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	data, name, err := rc.ReportService.AttendanceRegisterXLSX(year, month)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	if c.Query("archive") == "true" {
		url, downloadURL, err := rc.ReportService.Archive(c.Request.Context(), name, data)
		if err != nil {
			apperr.Write(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":      "Report archived successfully",
			"url":          url,
			"download_url": downloadURL,
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}
