package incidents

import (
	"net/http"
	"strconv"
	"time"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"
	"daycare-api/internal/util"

	"github.com/gin-gonic/gin"
)

type IncidentController struct {
	IncidentService *IncidentService
}

func (ic *IncidentController) Create(c *gin.Context) {
	var req struct {
		ChildID          int        `json:"child_id" binding:"required"`
		Type             string     `json:"type"`
		Severity         string     `json:"severity"`
		Status           string     `json:"status"`
		Description      string     `json:"description" binding:"required"`
		ActionTaken      string     `json:"action_taken"`
		FollowUpRequired bool       `json:"follow_up_required"`
		FollowUpNotes    string     `json:"follow_up_notes"`
		OccurredAt       *time.Time `json:"occurred_at"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inc := Incident{
		ChildID:          req.ChildID,
		Type:             req.Type,
		Severity:         req.Severity,
		Status:           req.Status,
		Description:      req.Description,
		ActionTaken:      req.ActionTaken,
		FollowUpRequired: req.FollowUpRequired,
		FollowUpNotes:    req.FollowUpNotes,
	}
	if req.OccurredAt != nil {
		inc.OccurredAt = *req.OccurredAt
	}
	if v, ok := c.Get("userID"); ok {
		if uid, ok := v.(int); ok {
			inc.ReportedBy = &uid
		}
	}

	created, err := ic.IncidentService.Create(inc)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Incident reported successfully",
		"incident": created,
	})
}

func (ic *IncidentController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident id"})
		return
	}

	inc, err := ic.IncidentService.GetByID(id)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"incident": inc})
}

func (ic *IncidentController) List(c *gin.Context) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := ListFilter{
		Type:     c.Query("type"),
		Severity: c.Query("severity"),
		Status:   c.Query("status"),
	}
	if v := c.Query("child_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child_id"})
			return
		}
		filter.ChildID = id
	}
	if y, m := c.Query("year"), c.Query("month"); y != "" && m != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		month, err := strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		from, until := util.MonthBounds(year, month)
		filter.OccurredFrom = &from
		filter.OccurredUntil = &until
	} else {
		fromStr := c.Query("from")
		toStr := c.Query("to")
		from, hasFrom, until, hasUntil, err := util.ParseDateRange(&fromStr, &toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if hasFrom {
			filter.OccurredFrom = &from
		}
		if hasUntil {
			filter.OccurredUntil = &until
		}
	}

	items, page, err := ic.IncidentService.List(filter, p)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetched incidents successfully",
		"incidents":  items,
		"pagination": page,
	})
}

func (ic *IncidentController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident id"})
		return
	}

	var patch IncidentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inc, err := ic.IncidentService.Update(id, patch)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Incident updated successfully",
		"incident": inc,
	})
}

func (ic *IncidentController) MarkParentNotified(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident id"})
		return
	}

	inc, err := ic.IncidentService.MarkParentNotified(id)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Parent notified",
		"incident": inc,
	})
}

func (ic *IncidentController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident id"})
		return
	}

	if err := ic.IncidentService.Delete(id); err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Incident deleted successfully"})
}
