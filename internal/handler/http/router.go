package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/blazecore/payroll-backend-go/internal/config"
	"github.com/blazecore/payroll-backend-go/internal/handler/http/middleware"
	"github.com/blazecore/payroll-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Worker     WorkerHandler
	Attendance AttendanceHandler
	Advance    AdvanceHandler
	Holiday    HolidayHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
	Panchang   PanchangHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", h.Worker.List)
				r.Post("/", h.Worker.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Worker.Get)
					r.Put("/", h.Worker.Update)
					r.Delete("/", h.Worker.Delete)
					r.Get("/attendance", h.Worker.GetAttendance)
					r.Get("/attendance/by-day", h.Worker.GetAttendanceByDay)
					r.Get("/advances", h.Worker.GetAdvances)
					r.Get("/summary", h.Worker.GetSummary)
				})
			})

			r.Post("/attendance", h.Attendance.Mark)
			r.Post("/advances", h.Advance.Give)

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Post("/", h.Holiday.Add)
				r.Get("/check", h.Holiday.Check)
				r.Delete("/{id}", h.Holiday.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/payroll", h.Report.Payroll)
				r.Get("/attendance", h.Report.Attendance)
			})

			r.Get("/dashboard/stats", h.Dashboard.Stats)

			r.Get("/panchang", h.Panchang.Today)
			r.Get("/festivals/{year}/{month}", h.Panchang.Festivals)
			r.Get("/suggested-holidays/{year}/{month}", h.Panchang.SuggestedHolidays)
		})
	})
	return r
}
