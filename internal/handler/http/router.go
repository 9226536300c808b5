package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paylite/payroll-backend-go/internal/handler/http/middleware"
	"github.com/paylite/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	registerHandler RegisterHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paylite-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", payrollHandler.GetSettings)
				r.Put("/", payrollHandler.UpdateSettings)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)

					r.Route("/deductions", func(r chi.Router) {
						r.Post("/", employeeHandler.AddDeduction)
						r.Delete("/{deductionId}", employeeHandler.RemoveDeduction)
					})

					r.Route("/periods", func(r chi.Router) {
						r.Get("/", payrollHandler.ListPeriods)
						r.Put("/{seq}/hours", payrollHandler.UpdateHours)
					})

					r.Get("/ytd", payrollHandler.GetYearToDate)
				})
			})

			r.Post("/periods/generate", payrollHandler.GeneratePeriods)

			r.Route("/register", func(r chi.Router) {
				r.Get("/", registerHandler.List)
				r.Post("/", registerHandler.CreateManual)
				r.Patch("/{id}/reconciled", registerHandler.SetReconciled)
				r.Delete("/{id}", registerHandler.DeleteManual)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/quarterly/{quarter}", reportHandler.Quarterly)
				r.Get("/annual", reportHandler.Annual)
			})
		})
	})
	return r
}
