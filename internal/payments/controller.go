package payments

import (
	"net/http"
	"strconv"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	PaymentService *PaymentService
}

func (pc *PaymentController) Create(c *gin.Context) {
	var req struct {
		Direction   string  `json:"direction" binding:"required"`
		Category    string  `json:"category"`
		Status      string  `json:"status"`
		Method      string  `json:"method"`
		Amount      float64 `json:"amount" binding:"required"`
		Date        string  `json:"date"`
		Description string  `json:"description"`
		PayerID     *int    `json:"payer_id"`
		PayeeID     *int    `json:"payee_id"`
		DueDate     string  `json:"due_date"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := pc.PaymentService.Create(Payment{
		Direction:   req.Direction,
		Category:    req.Category,
		Status:      req.Status,
		Method:      req.Method,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
		PayerID:     req.PayerID,
		PayeeID:     req.PayeeID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment created successfully",
		"payment": created,
	})
}

func (pc *PaymentController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	p, err := pc.PaymentService.GetByID(id)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": p})
}

func (pc *PaymentController) List(c *gin.Context) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := ListFilter{
		Direction: c.Query("direction"),
		Category:  c.Query("category"),
		Status:    c.Query("status"),
		From:      c.Query("from"),
		To:        c.Query("to"),
	}
	if v := c.Query("payer_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payer_id"})
			return
		}
		filter.PayerID = id
	}
	if v := c.Query("payee_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payee_id"})
			return
		}
		filter.PayeeID = id
	}

	items, page, err := pc.PaymentService.List(filter, p)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetched payments successfully",
		"payments":   items,
		"pagination": page,
	})
}

func (pc *PaymentController) Summary(c *gin.Context) {
	sum, err := pc.PaymentService.Summarize(c.Query("from"), c.Query("to"))
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": sum})
}

func (pc *PaymentController) Outstanding(c *gin.Context) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	overdueOnly := c.Query("overdue") == "true"
	items, page, err := pc.PaymentService.Outstanding(overdueOnly, p)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetched outstanding payments successfully",
		"payments":   items,
		"pagination": page,
	})
}

func (pc *PaymentController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	var patch PaymentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := pc.PaymentService.Update(id, patch)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment updated successfully",
		"payment": p,
	})
}

func (pc *PaymentController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	if err := pc.PaymentService.Delete(id); err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}
