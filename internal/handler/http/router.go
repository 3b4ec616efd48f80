package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/gestorpj/payroll-backend-go/internal/config"
	"github.com/gestorpj/payroll-backend-go/internal/handler/http/middleware"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	providerHandler ProviderHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
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
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies/my", func(r chi.Router) {
				r.Get("/", companyHandler.GetMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", companyHandler.UpdateMine)
				})
			})

			r.Route("/providers", func(r chi.Router) {
				r.Get("/", providerHandler.List)
				r.Get("/{id}", providerHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", providerHandler.Create)
					r.Put("/{id}", providerHandler.Update)
					r.Delete("/{id}", providerHandler.Delete)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/calendar", payrollHandler.Calendar)
				r.Post("/preview", payrollHandler.Preview)
				r.Get("/", payrollHandler.List)
				r.Get("/summary", payrollHandler.Summary)
				r.Get("/export", payrollHandler.Export)
				r.Get("/{id}", payrollHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", payrollHandler.Create)
					r.Put("/{id}", payrollHandler.Update)
					r.Post("/finalize", payrollHandler.Finalize)
					r.Delete("/{id}", payrollHandler.Delete)
				})
			})
		})
	})

	return r
}
