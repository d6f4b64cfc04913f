package notifications

import (
	"encoding/json"
	"net/http"
	"strconv"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type NotificationController struct {
	NotificationService *NotificationService
}

func (nc *NotificationController) Create(c *gin.Context) {
	var req struct {
		Type          string          `json:"type"`
		Title         string          `json:"title" binding:"required"`
		Body          string          `json:"body"`
		RecipientType string          `json:"recipient_type"`
		RecipientID   *int            `json:"recipient_id"`
		Metadata      json.RawMessage `json:"metadata"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n := Notification{
		Type:          req.Type,
		Title:         req.Title,
		Body:          req.Body,
		RecipientType: req.RecipientType,
		RecipientID:   req.RecipientID,
	}
	if len(req.Metadata) > 0 {
		n.Metadata = datatypes.JSON(req.Metadata)
	}

	created, err := nc.NotificationService.Create(n)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Notification created successfully",
		"notification": created,
	})
}

func (nc *NotificationController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	n, err := nc.NotificationService.GetByID(id)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": n})
}

// List scopes the feed to the caller identified by the auth middleware.
func (nc *NotificationController) List(c *gin.Context) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, _ := c.Get("role")
	userID, _ := c.Get("userID")
	recipientType, _ := role.(string)
	recipientID, _ := userID.(int)
	if recipientType == "manager" {
		recipientType = RecipientAdmin
	}

	unreadOnly := c.Query("unread") == "true"
	items, page, err := nc.NotificationService.ListForRecipient(recipientType, recipientID, unreadOnly, p)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Fetched notifications successfully",
		"notifications": items,
		"pagination":    page,
	})
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	n, err := nc.NotificationService.MarkRead(id)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Notification marked as read",
		"notification": n,
	})
}

func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	role, _ := c.Get("role")
	userID, _ := c.Get("userID")
	recipientType, _ := role.(string)
	recipientID, _ := userID.(int)
	if recipientType == "manager" {
		recipientType = RecipientAdmin
	}

	n, err := nc.NotificationService.MarkAllRead(recipientType, recipientID)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notifications marked as read",
		"updated": n,
	})
}

func (nc *NotificationController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	if err := nc.NotificationService.Delete(id); err != nil {
		apperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}
