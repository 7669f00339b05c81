package http

import (
	"log/slog"
	"os"

	"github.com/MHamza118/EMSFSPro-sub000/internal/handler/http/middleware"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AppEnv           string
	FrontendURL      string
	GoogleLoginReady bool
}

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Schedule     ScheduleHandler
	Attendance   AttendanceHandler
	Holiday      HolidayHandler
	Compensation CompensationHandler
	Task         TaskHandler
	Progress     ProgressHandler
	Notification NotificationHandler
	Dashboard    DashboardHandler
}

func NewRouter(jwtService jwt.Service, cfg RouterConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "emsfspro"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			if cfg.GoogleLoginReady {
				r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
				r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
			}
		})

		// The SSE stream authenticates with its own short-lived token in
		// the query string, so it sits outside the Verifier chain.
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.GetSelf)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.ListEmployees)
					r.Post("/", h.Employee.CreateEmployee)
					r.Get("/{id}", h.Employee.GetEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/my", h.Schedule.GetMySchedule)
				r.Put("/my", h.Schedule.SaveMySchedule)

				// Admin only, keyed by user id to match the schedule store
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/{userID}", h.Schedule.GetEmployeeSchedule)
					r.Put("/{userID}", h.Schedule.SaveEmployeeSchedule)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/status", h.Attendance.Status)
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-in/late", h.Attendance.CheckInLate)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Post("/check-out/late", h.Attendance.CheckOutLate)
				r.Get("/my", h.Attendance.MyHistory)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.History)
					r.Get("/export", h.Attendance.ExportCSV)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Post("/", h.Holiday.Create)
				r.Get("/my", h.Holiday.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Holiday.ListAll)
					r.Put("/{id}/decision", h.Holiday.Decide)
				})
			})

			r.Route("/compensations", func(r chi.Router) {
				r.Post("/", h.Compensation.Create)
				r.Get("/my", h.Compensation.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Compensation.ListAll)
					r.Put("/{id}/decision", h.Compensation.Decide)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/my", h.Task.ListMine)
				r.Get("/{id}", h.Task.Get)
				r.Patch("/{id}/status", h.Task.UpdateStatus)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Task.ListAll)
					r.Post("/", h.Task.Create)
					r.Put("/{id}", h.Task.Update)
					r.Delete("/{id}", h.Task.Delete)
				})
			})

			r.Route("/progress", func(r chi.Router) {
				r.Post("/", h.Progress.Create)
				r.Get("/my", h.Progress.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Progress.ListAll)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/sse-token", h.Notification.GetSSEToken)
				r.Post("/{id}/read", h.Notification.MarkRead)
				r.Post("/read-all", h.Notification.MarkAllRead)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/me", h.Dashboard.Self)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Dashboard.Admin)
				})
			})
		})
	})
	return r
}
