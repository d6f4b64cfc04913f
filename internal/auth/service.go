package auth

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"daycare-api/config"
	"daycare-api/internal/apperr"
	"daycare-api/internal/pagination"
	"daycare-api/internal/util"

	"gorm.io/gorm"
)

type AuthService struct {
	DB  *gorm.DB
	CFG *config.Config
}

var sendMail = smtp.SendMail

// invalidCredentials is the single message for every login failure so callers
// cannot tell an unknown email from a wrong password.
const invalidCredentials = "invalid email or password"

func (s *AuthService) Register(input RegisterInput) (*User, string, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, "", apperr.Validationf("email is required")
	}
	if input.Password == "" {
		return nil, "", apperr.Validationf("password is required")
	}
	if input.Role == "" {
		input.Role = RoleParent
	}
	if !ValidRole(input.Role) {
		return nil, "", apperr.Validationf("invalid role %q", input.Role)
	}

	hashed, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, "", apperr.Storef("failed to hash password")
	}

	user := User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Password:  hashed,
		Role:      input.Role,
		Phone:     input.Phone,
		Address:   input.Address,
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if apperr.IsDuplicate(err) {
			return nil, "", apperr.Validationf("an account with this email already exists")
		}
		return nil, "", apperr.FromDB(err, "user")
	}

	token, err := IssueToken(s.CFG.JWTSecret, &user, time.Now())
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

func (s *AuthService) Login(email, password string) (*User, string, error) {
	var user User
	if err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return nil, "", apperr.Authf(invalidCredentials)
	}

	if err := util.VerifyPassword(password, user.Password); err != nil {
		return nil, "", apperr.Authf(invalidCredentials)
	}

	token, err := IssueToken(s.CFG.JWTSecret, &user, time.Now())
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

func (s *AuthService) GetUserByID(id int) (*User, error) {
	var user User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, apperr.FromDB(err, "user")
	}
	return &user, nil
}

func (s *AuthService) ListUsers(role *string, p pagination.Params) ([]User, pagination.Result, error) {
	q := s.DB.Model(&User{})
	if role != nil && *role != "" {
		q = q.Where("role = ?", *role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "user")
	}

	var users []User
	if err := q.Order("id").Offset(p.Offset()).Limit(p.Normalize().Limit).Find(&users).Error; err != nil {
		return nil, pagination.Result{}, apperr.FromDB(err, "user")
	}

	return users, pagination.Paginate(total, p), nil
}

func (s *AuthService) UpdateUser(id int, patch UserPatch) (*User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Empty() {
		return user, nil
	}

	updates := map[string]interface{}{}
	if patch.FirstName != nil {
		updates["firstname"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["lastname"] = *patch.LastName
	}
	if patch.Role != nil {
		if !ValidRole(*patch.Role) {
			return nil, apperr.Validationf("invalid role %q", *patch.Role)
		}
		updates["role"] = *patch.Role
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, apperr.FromDB(err, "user")
	}

	return s.GetUserByID(id)
}

// DeleteUser removes the account; ownership rows (children, babysitter
// profiles) cascade and optional references are nulled by the FK policy.
func (s *AuthService) DeleteUser(id int) error {
	res := s.DB.Delete(&User{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("user not found")
	}
	return nil
}

func (s *AuthService) SendOTP(email string) (*User, string, error) {
	var user User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", apperr.NotFoundf("user not found")
	}

	otp := fmt.Sprintf("%06d", util.RandomInt(100000, 999999))

	record := OTP{
		Email: email,
		Code:  otp,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, "", apperr.FromDB(err, "otp")
	}

	from := s.CFG.GmailUser
	password := s.CFG.GmailPass
	to := []string{user.Email}
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	subject := "OTP to change password"
	body := fmt.Sprintf(
		"Hi there,\n\n"+
			"Your OTP to change the password is: %s\n\n"+
			"This code will expire in 10 minutes.\n\n"+
			"Thank you.",
		otp,
	)

	message := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s",
		user.Email,
		subject,
		body,
	))

	smtpAuth := smtp.PlainAuth("", from, password, smtpHost)

	if err := sendMail(smtpHost+":"+smtpPort, smtpAuth, from, to, message); err != nil {
		log.Printf("Error sending email to %s: %v\n", user.Email, err)
		return nil, "", apperr.Storef("failed to send OTP email")
	}

	return &user, otp, nil
}

func (s *AuthService) ResetPassword(email, code, newPassword string) (*User, error) {
	var otp OTP
	if err := s.DB.Where("email = ? AND code = ?", email, code).
		Order("created_at desc").First(&otp).Error; err != nil {
		return nil, apperr.Validationf("invalid OTP")
	}

	var user User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, apperr.NotFoundf("user not found")
	}

	if time.Since(otp.CreatedAt) > 10*time.Minute {
		return nil, apperr.Validationf("OTP expired")
	}

	hashed, err := util.HashPassword(newPassword)
	if err != nil {
		return nil, apperr.Storef("failed to hash password")
	}
	if err := s.DB.Model(&User{}).Where("email = ?", email).
		Update("password", hashed).Error; err != nil {
		return nil, apperr.FromDB(err, "user")
	}

	return &user, nil
}
