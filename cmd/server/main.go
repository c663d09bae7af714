package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/lendcore/credit-engine/internal/config"
	"github.com/lendcore/credit-engine/internal/handler"
	"github.com/lendcore/credit-engine/internal/repository"
	"github.com/lendcore/credit-engine/internal/service"
	"github.com/lendcore/credit-engine/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := runMigrations(db, cfg.Database.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	creditRepo := repository.NewCreditRepository(db)
	personalRepo := repository.NewPersonalCreditRepository(db)
	realEstateRepo := repository.NewRealEstateCreditRepository(db)
	businessRepo := repository.NewBusinessCreditRepository(db)
	repaymentRepo := repository.NewRepaymentRepository(db)

	// Initialize services
	clientService := service.NewClientService(clientRepo, creditRepo)
	creditService := service.NewCreditService(creditRepo, personalRepo, realEstateRepo, businessRepo, clientRepo, repaymentRepo, cfg.Policy)
	repaymentService := service.NewRepaymentService(repaymentRepo, creditRepo)

	clientHandler := handler.NewClientHandler(clientService)
	creditHandler := handler.NewCreditHandler(creditService)
	repaymentHandler := handler.NewRepaymentHandler(repaymentService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Setup routes
	router := setupRoutes(clientHandler, creditHandler, repaymentHandler, healthHandler)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func runMigrations(db *sqlx.DB, path string) error {
	driver, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	clientHandler *handler.ClientHandler,
	creditHandler *handler.CreditHandler,
	repaymentHandler *handler.RepaymentHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()

	router.Use(response.RequestIDMiddleware)
	router.Use(response.LoggingMiddleware)
	router.Use(response.CORSMiddleware)

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Clients
	api.HandleFunc("/clients", clientHandler.GetAll).Methods("GET")
	api.HandleFunc("/clients", clientHandler.Create).Methods("POST")
	api.HandleFunc("/clients/search", clientHandler.SearchByName).Methods("GET")
	api.HandleFunc("/clients/email/{email}", clientHandler.GetByEmail).Methods("GET")
	api.HandleFunc("/clients/{id:[0-9]+}", clientHandler.GetByID).Methods("GET")
	api.HandleFunc("/clients/{id:[0-9]+}", clientHandler.Update).Methods("PUT")
	api.HandleFunc("/clients/{id:[0-9]+}", clientHandler.Delete).Methods("DELETE")
	api.HandleFunc("/clients/{id:[0-9]+}/credits", clientHandler.GetCredits).Methods("GET")
	api.HandleFunc("/clients/{id:[0-9]+}/credits/total", clientHandler.GetCreditTotal).Methods("GET")

	// Credits: literal segments are registered before the numeric id routes
	api.HandleFunc("/credits", creditHandler.GetAll).Methods("GET")
	api.HandleFunc("/credits/status/{status}", creditHandler.GetByStatus).Methods("GET")
	api.HandleFunc("/credits/status/{status}/count", creditHandler.CountByStatus).Methods("GET")
	api.HandleFunc("/credits/search/request-date", creditHandler.GetByRequestDateRange).Methods("GET")
	api.HandleFunc("/credits/search/amount", creditHandler.GetByAmountRange).Methods("GET")
	api.HandleFunc("/credits/search/accepted-after", creditHandler.GetAcceptedAfter).Methods("GET")
	api.HandleFunc("/credits/client/{clientId:[0-9]+}", creditHandler.GetByClient).Methods("GET")
	api.HandleFunc("/credits/personal", creditHandler.GetAllPersonal).Methods("GET")
	api.HandleFunc("/credits/personal", creditHandler.CreatePersonal).Methods("POST")
	api.HandleFunc("/credits/personal/client/{clientId:[0-9]+}", creditHandler.GetPersonalByClient).Methods("GET")
	api.HandleFunc("/credits/personal/search", creditHandler.SearchPersonalByMotif).Methods("GET")
	api.HandleFunc("/credits/personal/status/{status}", creditHandler.GetPersonalByStatusAndMotif).Methods("GET")
	api.HandleFunc("/credits/personal/average", creditHandler.AveragePersonal).Methods("GET")
	api.HandleFunc("/credits/real-estate", creditHandler.GetAllRealEstate).Methods("GET")
	api.HandleFunc("/credits/real-estate", creditHandler.CreateRealEstate).Methods("POST")
	api.HandleFunc("/credits/real-estate/client/{clientId:[0-9]+}", creditHandler.GetRealEstateByClient).Methods("GET")
	api.HandleFunc("/credits/real-estate/status/{status}", creditHandler.GetRealEstateByStatusAndPropertyType).Methods("GET")
	api.HandleFunc("/credits/real-estate/property-type/{propertyType}", creditHandler.SearchRealEstateByPropertyType).Methods("GET")
	api.HandleFunc("/credits/real-estate/property-type/{propertyType}/count", creditHandler.CountRealEstateByPropertyType).Methods("GET")
	api.HandleFunc("/credits/real-estate/property-type/{propertyType}/average", creditHandler.AverageRealEstateByPropertyType).Methods("GET")
	api.HandleFunc("/credits/business", creditHandler.GetAllBusiness).Methods("GET")
	api.HandleFunc("/credits/business", creditHandler.CreateBusiness).Methods("POST")
	api.HandleFunc("/credits/business/client/{clientId:[0-9]+}", creditHandler.GetBusinessByClient).Methods("GET")
	api.HandleFunc("/credits/business/search", creditHandler.SearchBusinessByCompanyName).Methods("GET")
	api.HandleFunc("/credits/business/motif", creditHandler.SearchBusinessByMotif).Methods("GET")
	api.HandleFunc("/credits/business/status/{status}", creditHandler.GetBusinessByStatusAndCompanyName).Methods("GET")
	api.HandleFunc("/credits/business/average", creditHandler.AverageBusiness).Methods("GET")
	api.HandleFunc("/credits/{id:[0-9]+}", creditHandler.GetByID).Methods("GET")
	api.HandleFunc("/credits/{id:[0-9]+}", creditHandler.Update).Methods("PUT")
	api.HandleFunc("/credits/{id:[0-9]+}", creditHandler.Delete).Methods("DELETE")
	api.HandleFunc("/credits/{id:[0-9]+}/repayments", creditHandler.GetRepayments).Methods("GET")
	api.HandleFunc("/credits/{creditId:[0-9]+}/repayments/total", repaymentHandler.GetTotalByCredit).Methods("GET")

	// Repayments
	api.HandleFunc("/repayments", repaymentHandler.GetAll).Methods("GET")
	api.HandleFunc("/repayments", repaymentHandler.Create).Methods("POST")
	api.HandleFunc("/repayments/type/{type}", repaymentHandler.GetByType).Methods("GET")
	api.HandleFunc("/repayments/type/{type}/count", repaymentHandler.CountByType).Methods("GET")
	api.HandleFunc("/repayments/search/date-range", repaymentHandler.GetByDateRange).Methods("GET")
	api.HandleFunc("/repayments/search/after", repaymentHandler.GetAfterDate).Methods("GET")
	api.HandleFunc("/repayments/credit/{creditId:[0-9]+}/type/{type}", repaymentHandler.GetByCreditIDAndType).Methods("GET")
	api.HandleFunc("/repayments/{id:[0-9]+}", repaymentHandler.GetByID).Methods("GET")
	api.HandleFunc("/repayments/{id:[0-9]+}", repaymentHandler.Update).Methods("PUT")
	api.HandleFunc("/repayments/{id:[0-9]+}", repaymentHandler.Delete).Methods("DELETE")

	return router
}
