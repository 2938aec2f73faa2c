package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sdm-erp/erp-backend-go/internal/config"
	"github.com/sdm-erp/erp-backend-go/internal/domain/user"
	"github.com/sdm-erp/erp-backend-go/internal/handler/http/middleware"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Finance    FinanceHandler
	Project    ProjectHandler
	Unit       UnitHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sdm-erp"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Locally stored files (avatars)
	fileServer := http.FileServer(http.Dir(cfg.Storage.BasePath))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.User.Me)
				r.Post("/me/avatar", h.User.UploadAvatar)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ActionUserManage))
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Get("/{id}", h.User.GetByID)
					r.Put("/{id}", h.User.Update)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ActionAttendanceClock))
					r.Post("/clock-in", h.Attendance.ClockIn)
					r.Post("/clock-out", h.Attendance.ClockOut)
				})
				r.Get("/", h.Attendance.ListByMonth)
				r.Get("/stats", h.Attendance.MonthlyStats)
			})

			r.Route("/salary-configs", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.ActionSalaryConfigManage))
				r.Get("/", h.Payroll.ListSalaryConfigs)
				r.Put("/", h.Payroll.UpsertSalaryConfig)
				r.Get("/{userID}", h.Payroll.GetSalaryConfig)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ActionPayrollIssue))
					r.Post("/issue", h.Payroll.IssueSlip)
					r.Post("/issue-bulk", h.Payroll.IssueBulk)
				})
				r.Get("/records", h.Payroll.ListRecords)
				r.Get("/records/{id}", h.Payroll.GetRecord)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ActionFinanceView))
					r.Get("/", h.Finance.List)
					r.Get("/{id}", h.Finance.GetByID)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ActionFinanceManage))
					r.Post("/", h.Finance.Create)
					r.Post("/split", h.Finance.CreateSplit)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ActionProjectView))
					r.Get("/", h.Project.List)
					r.Get("/{id}/tasks", h.Project.ListTasks)
					r.Put("/tasks/{taskID}/move", h.Project.MoveTask)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ActionProjectManage))
					r.Post("/", h.Project.Create)
					r.Put("/{id}/status", h.Project.UpdateStatus)
					r.Post("/{id}/tasks", h.Project.CreateTask)
				})
			})

			r.Route("/units", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.ActionUnitManage))
				r.Get("/", h.Unit.List)
				r.Post("/", h.Unit.Create)
				r.Get("/{id}", h.Unit.GetByID)
				r.Put("/{id}", h.Unit.Update)
			})
		})
	})
	return r
}
