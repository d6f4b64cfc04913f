package children

import (
	"net/http"
	"strconv"
	"time"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type ChildController struct {
	ChildService *ChildService
}

func (cc *ChildController) Create(c *gin.Context) {
	var req struct {
		FirstName    string     `json:"firstname" binding:"required"`
		LastName     string     `json:"lastname" binding:"required"`
		DateOfBirth  time.Time  `json:"date_of_birth" binding:"required"`
		Gender       string     `json:"gender" binding:"required"`
		ParentID     int        `json:"parent_id" binding:"required"`
		BabysitterID *int       `json:"babysitter_id"`
		SessionType  string     `json:"session_type"`
		Status       string     `json:"status"`
		Allergies    []string   `json:"allergies"`
		MedicalInfo  string     `json:"medical_info"`
		SpecialNeeds string     `json:"special_needs"`
		EnrolledAt   *time.Time `json:"enrolled_at"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	child := Child{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		ParentID:     req.ParentID,
		BabysitterID: req.BabysitterID,
		SessionType:  req.SessionType,
		Status:       req.Status,
		MedicalInfo:  req.MedicalInfo,
		SpecialNeeds: req.SpecialNeeds,
	}
	if len(req.Allergies) > 0 {
		child.Allergies = pq.StringArray(req.Allergies)
	}
	if req.EnrolledAt != nil {
		child.EnrolledAt = *req.EnrolledAt
	}

	created, err := cc.ChildService.Create(child)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Child created successfully",
		"child":   created,
	})
}

func (cc *ChildController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child id"})
		return
	}

	child, err := cc.ChildService.GetByID(id)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"child": child})
}

func (cc *ChildController) List(c *gin.Context) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := ListFilter{
		Status:      c.Query("status"),
		SessionType: c.Query("session_type"),
	}
	if v := c.Query("parent_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent_id"})
			return
		}
		filter.ParentID = id
	}
	if v := c.Query("babysitter_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid babysitter_id"})
			return
		}
		filter.BabysitterID = id
	}

	items, page, err := cc.ChildService.List(filter, p)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetched children successfully",
		"children":   items,
		"pagination": page,
	})
}

func (cc *ChildController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child id"})
		return
	}

	var patch ChildPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	child, err := cc.ChildService.Update(id, patch)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Child updated successfully",
		"child":   child,
	})
}

func (cc *ChildController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child id"})
		return
	}

	if err := cc.ChildService.Delete(id); err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Child deleted successfully"})
}
