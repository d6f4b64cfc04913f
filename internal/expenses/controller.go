package expenses

import (
	"net/http"
	"strconv"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"github.com/gin-gonic/gin"
)

type ExpenseController struct {
	ExpenseService *ExpenseService
}

func (ec *ExpenseController) Create(c *gin.Context) {
	var req struct {
		Category    string  `json:"category"`
		Status      string  `json:"status"`
		Method      string  `json:"method"`
		Amount      float64 `json:"amount" binding:"required"`
		Date        string  `json:"date"`
		Vendor      string  `json:"vendor"`
		Description string  `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e := Expense{
		Category:    req.Category,
		Status:      req.Status,
		Method:      req.Method,
		Amount:      req.Amount,
		Date:        req.Date,
		Vendor:      req.Vendor,
		Description: req.Description,
	}
	if v, ok := c.Get("userID"); ok {
		if uid, ok := v.(int); ok {
			e.RecordedBy = &uid
		}
	}

	created, err := ec.ExpenseService.Create(e)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense created successfully",
		"expense": created,
	})
}

func (ec *ExpenseController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}

	e, err := ec.ExpenseService.GetByID(id)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": e})
}

func (ec *ExpenseController) List(c *gin.Context) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := ListFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	}

	items, page, err := ec.ExpenseService.List(filter, p)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetched expenses successfully",
		"expenses":   items,
		"pagination": page,
	})
}

func (ec *ExpenseController) CategoryTotals(c *gin.Context) {
	totals, err := ec.ExpenseService.CategoryTotals(c.Query("from"), c.Query("to"))
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

func (ec *ExpenseController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}

	var patch ExpensePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := ec.ExpenseService.Update(id, patch)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Expense updated successfully",
		"expense": e,
	})
}

func (ec *ExpenseController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}

	if err := ec.ExpenseService.Delete(id); err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
