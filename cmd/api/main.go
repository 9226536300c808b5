package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/paylite/payroll-backend-go/internal/config"
	"github.com/paylite/payroll-backend-go/internal/domain/state"
	appHTTP "github.com/paylite/payroll-backend-go/internal/handler/http"
	"github.com/paylite/payroll-backend-go/internal/pkg/appstate"
	"github.com/paylite/payroll-backend-go/internal/pkg/database"
	"github.com/paylite/payroll-backend-go/internal/pkg/jwt"
	"github.com/paylite/payroll-backend-go/internal/repository/localfile"
	"github.com/paylite/payroll-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/paylite/payroll-backend-go/internal/service/auth"
	employeeService "github.com/paylite/payroll-backend-go/internal/service/employee"
	payrollService "github.com/paylite/payroll-backend-go/internal/service/payroll"
	registerService "github.com/paylite/payroll-backend-go/internal/service/register"
	reportService "github.com/paylite/payroll-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	var store state.SnapshotStore
	switch cfg.Storage.Type {
	case "local":
		store, err = localfile.NewSnapshotRepository(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local snapshot storage:", err)
		}
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database:", err)
		}
		store, err = postgresql.NewSnapshotRepository(ctx, db)
		if err != nil {
			log.Fatal("Failed to initialize database snapshot storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	stateManager := appstate.NewManager(store)
	if err := stateManager.Load(ctx); err != nil {
		log.Fatal("Failed to load application state:", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(cfg.JWT.AdminPasswordHash, JWTService)
	employeeSvc := employeeService.NewEmployeeService(stateManager)
	payrollSvc := payrollService.NewPayrollService(stateManager)
	registerSvc := registerService.NewRegisterService(stateManager)
	reportSvc := reportService.NewReportService(stateManager)

	authHandler := appHTTP.NewAuthHandler(authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	registerHandler := appHTTP.NewRegisterHandler(registerSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		payrollHandler,
		registerHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
