package auth

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"daycare-api/internal/pagination"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glebarez/sqlite"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique DB per test name so data doesn't leak across tests
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}

	return db
}

type mockAuthService struct {
	RegisterFn      func(input RegisterInput) (*User, string, error)
	LoginFn         func(email, password string) (*User, string, error)
	GetUserByIDFn   func(id int) (*User, error)
	ListUsersFn     func(role *string, p pagination.Params) ([]User, pagination.Result, error)
	UpdateUserFn    func(id int, patch UserPatch) (*User, error)
	DeleteUserFn    func(id int) error
	SendOTPFn       func(email string) (*User, string, error)
	ResetPasswordFn func(email, code, newPassword string) (*User, error)
}

func (m *mockAuthService) Register(input RegisterInput) (*User, string, error) {
	if m.RegisterFn == nil {
		return nil, "", assertErr("Register not implemented")
	}
	return m.RegisterFn(input)
}

func (m *mockAuthService) Login(email, password string) (*User, string, error) {
	if m.LoginFn == nil {
		return nil, "", assertErr("Login not implemented")
	}
	return m.LoginFn(email, password)
}

func (m *mockAuthService) GetUserByID(id int) (*User, error) {
	if m.GetUserByIDFn == nil {
		return nil, assertErr("GetUserByID not implemented")
	}
	return m.GetUserByIDFn(id)
}

func (m *mockAuthService) ListUsers(role *string, p pagination.Params) ([]User, pagination.Result, error) {
	if m.ListUsersFn == nil {
		return nil, pagination.Result{}, assertErr("ListUsers not implemented")
	}
	return m.ListUsersFn(role, p)
}

func (m *mockAuthService) UpdateUser(id int, patch UserPatch) (*User, error) {
	if m.UpdateUserFn == nil {
		return nil, assertErr("UpdateUser not implemented")
	}
	return m.UpdateUserFn(id, patch)
}

func (m *mockAuthService) DeleteUser(id int) error {
	if m.DeleteUserFn == nil {
		return assertErr("DeleteUser not implemented")
	}
	return m.DeleteUserFn(id)
}

func (m *mockAuthService) SendOTP(email string) (*User, string, error) {
	if m.SendOTPFn == nil {
		return nil, "", assertErr("SendOTP not implemented")
	}
	return m.SendOTPFn(email)
}

func (m *mockAuthService) ResetPassword(email, code, newPassword string) (*User, error) {
	if m.ResetPasswordFn == nil {
		return nil, assertErr("ResetPassword not implemented")
	}
	return m.ResetPasswordFn(email, code, newPassword)
}

var _ AuthServicePort = (*mockAuthService)(nil)

type assertErr string

func (e assertErr) Error() string { return string(e) }

func setupAuthRouter(ac *AuthController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.Use(func(c *gin.Context) {
		if v := c.GetHeader("X-UserID"); v != "" {
			var id int
			if _, err := fmt.Sscanf(v, "%d", &id); err == nil {
				c.Set("userID", id)
			}
		}
		if v := c.GetHeader("X-Role"); v != "" {
			c.Set("role", v)
		}
		c.Next()
	})

	r.POST("/register", ac.Register)
	r.POST("/login", ac.Login)
	r.GET("/me", ac.Me)
	r.GET("/users", ac.GetUsers)
	r.GET("/users/:id", ac.GetUser)
	r.PUT("/users/:id", ac.UpdateUser)
	r.DELETE("/users/:id", ac.DeleteUser)
	r.POST("/send-otp", ac.SendOTP)
	r.POST("/reset-password", ac.ResetPassword)

	return r
}

func postJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func doReqWithHeader(r http.Handler, method, path, key, value string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if key != "" {
		req.Header.Set(key, value)
	}
	r.ServeHTTP(w, req)
	return w
}

func requireContains(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected %q to contain %q", s, sub)
	}
}
