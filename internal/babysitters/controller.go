package babysitters

import (
	"net/http"
	"strconv"
	"time"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"github.com/gin-gonic/gin"
)

type BabysitterController struct {
	BabysitterService *BabysitterService
}

func (bc *BabysitterController) Create(c *gin.Context) {
	var req struct {
		UserID         int        `json:"user_id" binding:"required"`
		NationalID     string     `json:"national_id" binding:"required"`
		DateOfBirth    *time.Time `json:"date_of_birth"`
		NextOfKinName  string     `json:"next_of_kin_name"`
		NextOfKinPhone string     `json:"next_of_kin_phone"`
		Status         string     `json:"status"`
		PaymentRate    float64    `json:"payment_rate"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := bc.BabysitterService.Create(Babysitter{
		UserID:         req.UserID,
		NationalID:     req.NationalID,
		DateOfBirth:    req.DateOfBirth,
		NextOfKinName:  req.NextOfKinName,
		NextOfKinPhone: req.NextOfKinPhone,
		Status:         req.Status,
		PaymentRate:    req.PaymentRate,
	})
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Babysitter created successfully",
		"babysitter": created,
	})
}

func (bc *BabysitterController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid babysitter id"})
		return
	}

	b, err := bc.BabysitterService.GetByID(id)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"babysitter": b})
}

func (bc *BabysitterController) List(c *gin.Context) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}

	items, page, err := bc.BabysitterService.List(status, p)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Fetched babysitters successfully",
		"babysitters": items,
		"pagination":  page,
	})
}

func (bc *BabysitterController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid babysitter id"})
		return
	}

	var patch BabysitterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := bc.BabysitterService.Update(id, patch)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Babysitter updated successfully",
		"babysitter": b,
	})
}

func (bc *BabysitterController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid babysitter id"})
		return
	}

	if err := bc.BabysitterService.Delete(id); err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Babysitter deleted successfully"})
}

func (bc *BabysitterController) ChildrenCount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid babysitter id"})
		return
	}

	n, err := bc.BabysitterService.AssignedChildrenCount(id)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"babysitter_id": id, "children_count": n})
}
