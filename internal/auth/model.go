package auth

import "time"

const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleParent     = "parent"
	RoleBabysitter = "babysitter"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleParent, RoleBabysitter:
		return true
	}
	return false
}

type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"size:100;not null;column:firstname" json:"firstname"`
	LastName  string    `gorm:"size:100;not null;column:lastname" json:"lastname"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	Phone     string    `gorm:"size:30" json:"phone"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the serializable profile; the hash never leaves the service.
type PublicUser struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Phone     string `json:"phone,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// UserPatch carries only the fields a partial update supplies.
type UserPatch struct {
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	Role      *string `json:"role"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

func (p UserPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Role == nil && p.Phone == nil && p.Address == nil
}

type OTP struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"index;not null"`
	Code      string    `gorm:"size:6;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (OTP) TableName() string {
	return "otps"
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
