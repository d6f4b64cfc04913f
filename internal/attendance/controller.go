package attendance

import (
	"net/http"
	"strconv"
	"time"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	AttendanceService *AttendanceService
}

func (ac *AttendanceController) Create(c *gin.Context) {
	var req struct {
		Date       string     `json:"date" binding:"required"`
		PersonID   int        `json:"person_id" binding:"required"`
		PersonType string     `json:"person_type" binding:"required"`
		Status     string     `json:"status"`
		CheckIn    *time.Time `json:"check_in"`
		CheckOut   *time.Time `json:"check_out"`
		Notes      string     `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := Record{
		Date:       req.Date,
		PersonID:   req.PersonID,
		PersonType: req.PersonType,
		Status:     req.Status,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Notes:      req.Notes,
	}
	if v, ok := c.Get("userID"); ok {
		if uid, ok := v.(int); ok {
			rec.RecordedBy = &uid
		}
	}

	created, err := ac.AttendanceService.Create(rec)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Attendance recorded successfully",
		"attendance": created,
	})
}

func (ac *AttendanceController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attendance id"})
		return
	}

	rec, err := ac.AttendanceService.GetByID(id)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": rec})
}

func (ac *AttendanceController) List(c *gin.Context) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := ListFilter{
		Date:       c.Query("date"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		PersonType: c.Query("person_type"),
		Status:     c.Query("status"),
	}
	if v := c.Query("person_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person_id"})
			return
		}
		filter.PersonID = id
	}

	items, page, err := ac.AttendanceService.List(filter, p)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetched attendance successfully",
		"attendance": items,
		"pagination": page,
	})
}

func (ac *AttendanceController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attendance id"})
		return
	}

	var patch RecordPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := ac.AttendanceService.Update(id, patch)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Attendance updated successfully",
		"attendance": rec,
	})
}

func (ac *AttendanceController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attendance id"})
		return
	}

	if err := ac.AttendanceService.Delete(id); err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Attendance deleted successfully"})
}

func (ac *AttendanceController) DailyStats(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	stats, err := ac.AttendanceService.DailyStats(date)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (ac *AttendanceController) MonthlyStats(c *gin.Context) {
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

	stats, err := ac.AttendanceService.MonthlyStats(year, month)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
