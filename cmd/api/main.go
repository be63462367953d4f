package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/officetrack/attendance-backend-go/internal/config"
	appHTTP "github.com/officetrack/attendance-backend-go/internal/handler/http"
	"github.com/officetrack/attendance-backend-go/internal/pkg/database"
	"github.com/officetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/officetrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/officetrack/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/officetrack/attendance-backend-go/internal/service/auth"
	employeeService "github.com/officetrack/attendance-backend-go/internal/service/employee"
	reportService "github.com/officetrack/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authService := serviceAuth.NewAuthService(userRepo, JWTService, slog.Default())
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, authService, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		attendanceHandler,
		employeeHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
