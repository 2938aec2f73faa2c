package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/sdm-erp/erp-backend-go/internal/config"
	appHTTP "github.com/sdm-erp/erp-backend-go/internal/handler/http"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/cron"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/database"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/jwt"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/slip"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/storage"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/telegram"
	"github.com/sdm-erp/erp-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sdm-erp/erp-backend-go/internal/service/attendance"
	serviceAuth "github.com/sdm-erp/erp-backend-go/internal/service/auth"
	financeService "github.com/sdm-erp/erp-backend-go/internal/service/finance"
	payrollService "github.com/sdm-erp/erp-backend-go/internal/service/payroll"
	projectService "github.com/sdm-erp/erp-backend-go/internal/service/project"
	recapService "github.com/sdm-erp/erp-backend-go/internal/service/recap"
	unitService "github.com/sdm-erp/erp-backend-go/internal/service/unit"
	userService "github.com/sdm-erp/erp-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	financeRepo := postgresql.NewFinanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db, financeRepo)
	projectRepo := postgresql.NewProjectRepository(db)
	unitRepo := postgresql.NewUnitRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	telegramClient := telegram.NewClient(cfg.Telegram.BotToken)
	slipRenderer := slip.NewRenderer(cfg.Company)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	userSvc := userService.NewUserService(userRepo, fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, cfg.App.WorkdayStart)
	financeSvc := financeService.NewFinanceService(financeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, userRepo, attendanceRepo, slipRenderer, telegramClient)
	projectSvc := projectService.NewProjectService(projectRepo)
	unitSvc := unitService.NewUnitService(unitRepo)
	recapSvc := recapService.NewRecapService(attendanceRepo, telegramClient, cfg.Telegram.AdminChatID)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Finance:    appHTTP.NewFinanceHandler(financeSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		Unit:       appHTTP.NewUnitHandler(unitSvc),
	}

	scheduler := cron.NewScheduler()
	scheduler.AddJob("attendance-recap", cfg.Telegram.RecapInterval, recapSvc.SendDailyRecap)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
