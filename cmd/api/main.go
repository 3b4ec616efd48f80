package main

import (
	"fmt"
	"net/http"

	"github.com/gestorpj/payroll-backend-go/internal/config"
	appHTTP "github.com/gestorpj/payroll-backend-go/internal/handler/http"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/database"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/holiday"
	"github.com/gestorpj/payroll-backend-go/internal/pkg/jwt"
	"github.com/gestorpj/payroll-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/gestorpj/payroll-backend-go/internal/service/auth"
	serviceCompany "github.com/gestorpj/payroll-backend-go/internal/service/company"
	servicePayroll "github.com/gestorpj/payroll-backend-go/internal/service/payroll"
	serviceProvider "github.com/gestorpj/payroll-backend-go/internal/service/provider"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	providerRepo := postgresql.NewProviderRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	calendarResolver := servicePayroll.NewCalendarResolver(holiday.NewBrazilSource())

	authService := serviceAuth.NewAuthService(db, userRepo, companyRepo, jwtService, jwtRepo)
	companyService := serviceCompany.NewCompanyService(companyRepo)
	providerService := serviceProvider.NewProviderService(providerRepo)
	payrollService := servicePayroll.NewPayrollService(db, payrollRepo, providerRepo, calendarResolver)

	authHandler := appHTTP.NewAuthHandler(jwtService, authService)
	companyHandler := appHTTP.NewCompanyHandler(companyService)
	providerHandler := appHTTP.NewProviderHandler(providerService)
	payrollHandler := appHTTP.NewPayrollHandler(payrollService)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		companyHandler,
		providerHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
