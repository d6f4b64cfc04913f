package notifications

import (
	"strings"

	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"

	"gorm.io/gorm"
)

type NotificationService struct {
	DB *gorm.DB
}

func (s *NotificationService) Create(n Notification) (*Notification, error) {
	if strings.TrimSpace(n.Title) == "" {
		return nil, apperr.Validationf("title is required")
	}
	if n.Type == "" {
		n.Type = TypeInfo
	}
	if !ValidType(n.Type) {
		return nil, apperr.Validationf("invalid notification type %q", n.Type)
	}
	if n.RecipientType == "" {
		n.RecipientType = RecipientAll
	}
	if !ValidRecipientType(n.RecipientType) {
		return nil, apperr.Validationf("invalid recipient type %q", n.RecipientType)
	}
	if n.RecipientType == RecipientAll && n.RecipientID != nil {
		return nil, apperr.Validationf("broadcast notifications must not name a recipient")
	}

	n.Read = false
	n.Recipient = nil
	if err := s.DB.Create(&n).Error; err != nil {
		return nil, apperr.FromDB(err, "notification")
	}
	return &n, nil
}

func (s *NotificationService) GetByID(id int) (*Notification, error) {
	var n Notification
	if err := s.DB.First(&n, id).Error; err != nil {
		return nil, apperr.FromDB(err, "notification")
	}
	return &n, nil
}

// ListForRecipient returns the direct notifications for a user plus the
// broadcasts for their audience and for everyone.
func (s *NotificationService) ListForRecipient(recipientType string, recipientID int, unreadOnly bool, p pagination.Params) ([]Notification, pagination.Result, error) {
	if !ValidRecipientType(recipientType) {
		return nil, pagination.Result{}, apperr.Validationf("invalid recipient type %q", recipientType)
	}

	q := s.DB.Model(&Notification{}).Where(
		s.DB.Where("recipient_type = ? AND recipient_id = ?", recipientType, recipientID).
			Or("recipient_type = ? AND recipient_id IS NULL", recipientType).
			Or("recipient_type = ?", RecipientAll),
	)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "notification")
	}

	var items []Notification
	if err := q.Order("created_at DESC, id DESC").Offset(p.Offset()).Limit(p.Normalize().Limit).Find(&items).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "notification")
	}

	return items, pagination.Paginate(total, p), nil
}

func (s *NotificationService) MarkRead(id int) (*Notification, error) {
	n, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n.Read {
		return n, nil
	}

	if err := s.DB.Model(n).Update("read", true).Error; err != nil {
		return nil, apperr.FromDB(err, "notification")
	}
	return s.GetByID(id)
}

// MarkAllRead flips every unread notification visible to the recipient and
// reports how many were touched.
func (s *NotificationService) MarkAllRead(recipientType string, recipientID int) (int64, error) {
	if !ValidRecipientType(recipientType) {
		return 0, apperr.Validationf("invalid recipient type %q", recipientType)
	}

	res := s.DB.Model(&Notification{}).
		Where(
			s.DB.Where("recipient_type = ? AND recipient_id = ?", recipientType, recipientID).
				Or("recipient_type = ? AND recipient_id IS NULL", recipientType).
				Or("recipient_type = ?", RecipientAll),
		).
		Where("read = ?", false).
		Update("read", true)
	if res.Error != nil {
		return 0, apperr.FromDB(res.Error, "notification")
	}
	return res.RowsAffected, nil
}

func (s *NotificationService) Delete(id int) error {
	res := s.DB.Delete(&Notification{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "notification")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("notification not found")
	}
	return nil
}
