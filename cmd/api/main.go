package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/adapter/http"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/adapter/middleware"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/adapter/repository/mysql"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/config"
	customerDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
	loanDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/loan"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/infrastructure/cache"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/infrastructure/db"
	customerUC "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/usecase/customer"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/usecase/ingest"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/usecase/loanapp"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/pkg/id"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&customerDomain.Customer{}, &loanDomain.Loan{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	customers := mysql.NewCustomerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	// usecases
	customerUsecase := customerUC.NewUsecase(customers)
	loanUsecase := loanapp.NewUsecase(customers, loans, guow)
	ingestUsecase := ingest.NewUsecase(customers, loans)

	// handlers
	h := httpadp.NewHandler()
	customerHandler := httpadp.NewCustomerHandler(customerUsecase)
	loanHandler := httpadp.NewLoanHandler(loanUsecase)
	ingestHandler := httpadp.NewIngestHandler(ingestUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: id.NewID32}),
		echomw.Logger(),
		echomw.Recover(),
	)

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.POST("/register", customerHandler.Register, idemp)
	e.GET("/customer/:customer_id", customerHandler.GetCustomer)

	e.POST("/check-eligibility", loanHandler.CheckEligibility)
	e.POST("/create-loan", loanHandler.CreateLoan, idemp)
	e.GET("/view-loan/:loan_id", loanHandler.ViewLoan)
	e.GET("/view-loans/:customer_id", loanHandler.ViewLoansByCustomer)

	e.POST("/ingest/customers", ingestHandler.IngestCustomers, idemp)
	e.POST("/ingest/loans", ingestHandler.IngestLoans, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
