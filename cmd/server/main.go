package main

import (
	"log"
	"os"

	"daycare-api/config"
	"daycare-api/internal/attendance"
	"daycare-api/internal/auth"
	"daycare-api/internal/babysitters"
	"daycare-api/internal/budgets"
	"daycare-api/internal/children"
	"daycare-api/internal/expenses"
	"daycare-api/internal/incidents"
	"daycare-api/internal/notifications"
	"daycare-api/internal/payments"
	"daycare-api/internal/reports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&auth.User{}, &auth.OTP{},
		&babysitters.Babysitter{}, &children.Child{},
		&attendance.Record{}, &incidents.Incident{},
		&payments.Payment{}, &expenses.Expense{},
		&budgets.Budget{}, &notifications.Notification{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	secret := cfg.JWTSecret

	authService := &auth.AuthService{DB: db, CFG: &cfg}
	auth.RegisterRoutes(r, authService)

	babysitterService := &babysitters.BabysitterService{DB: db}
	babysitters.RegisterRoutes(r, babysitterService, secret)

	childService := &children.ChildService{DB: db}
	children.RegisterRoutes(r, childService, secret)

	attendanceService := &attendance.AttendanceService{DB: db}
	attendance.RegisterRoutes(r, attendanceService, secret)

	incidentService := &incidents.IncidentService{DB: db}
	incidents.RegisterRoutes(r, incidentService, secret)

	paymentService := &payments.PaymentService{DB: db}
	payments.RegisterRoutes(r, paymentService, secret)

	expenseService := &expenses.ExpenseService{DB: db}
	expenses.RegisterRoutes(r, expenseService, secret)

	budgetService := &budgets.BudgetService{DB: db}
	budgets.RegisterRoutes(r, budgetService, secret)

	notificationService := &notifications.NotificationService{DB: db}
	notifications.RegisterRoutes(r, notificationService, secret)

	reportService := &reports.ReportService{
		Payments:   paymentService,
		Expenses:   expenseService,
		Attendance: attendanceService,
		Bucket:     cfg.ReportsBucket,
	}
	reports.RegisterRoutes(r, reportService, secret)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
