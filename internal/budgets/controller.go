package budgets

import (
	"net/http"
	"strconv"
	"time"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type BudgetController struct {
	BudgetService *BudgetService
}

func (bc *BudgetController) Create(c *gin.Context) {
	var req struct {
		Name      string     `json:"name" binding:"required"`
		Period    string     `json:"period" binding:"required"`
		Category  string     `json:"category"`
		Year      int        `json:"year" binding:"required"`
		Month     *int       `json:"month"`
		Week      *int       `json:"week"`
		Day       *int       `json:"day"`
		Amount    float64    `json:"amount" binding:"required"`
		StartDate *time.Time `json:"start_date"`
		EndDate   *time.Time `json:"end_date"`
		Notes     string     `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b := Budget{
		Name:     req.Name,
		Period:   req.Period,
		Category: req.Category,
		Year:     req.Year,
		Month:    req.Month,
		Week:     req.Week,
		Day:      req.Day,
		Amount:   req.Amount,
		Notes:    req.Notes,
	}
	if req.StartDate != nil {
		b.StartDate = datatypes.Date(*req.StartDate)
	}
	if req.EndDate != nil {
		b.EndDate = datatypes.Date(*req.EndDate)
	}
	if v, ok := c.Get("userID"); ok {
		if uid, ok := v.(int); ok {
			b.CreatedBy = &uid
		}
	}

	created, err := bc.BudgetService.Create(b)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Budget created successfully",
		"budget":  created,
	})
}

func (bc *BudgetController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid budget id"})
		return
	}

	b, err := bc.BudgetService.GetByID(id)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": b})
}

func (bc *BudgetController) List(c *gin.Context) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := ListFilter{Period: c.Query("period"), Category: c.Query("category")}
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		filter.Year = year
	}

	items, page, err := bc.BudgetService.List(filter, p)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Fetched budgets successfully",
		"budgets":    items,
		"pagination": page,
	})
}

func (bc *BudgetController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid budget id"})
		return
	}

	var patch BudgetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := bc.BudgetService.Update(id, patch)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Budget updated successfully",
		"budget":  b,
	})
}

func (bc *BudgetController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid budget id"})
		return
	}

	if err := bc.BudgetService.Delete(id); err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
