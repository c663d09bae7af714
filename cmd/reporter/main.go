package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/lendcore/credit-engine/internal/config"
	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/repository"
)

func main() {
	log.Println("Starting portfolio reporter...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	creditRepo := repository.NewCreditRepository(db)
	realEstateRepo := repository.NewRealEstateCreditRepository(db)
	repaymentRepo := repository.NewRepaymentRepository(db)

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds())

	_, err = c.AddFunc(cfg.Reporter.Schedule, func() {
		reportPortfolio(creditRepo, realEstateRepo, repaymentRepo)
	})
	if err != nil {
		log.Fatalf("Error scheduling portfolio report job: %v", err)
	}

	c.Start()
	log.Println("Reporter started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down reporter...")
	c.Stop()
	log.Println("Reporter stopped")
}

// reportPortfolio logs a read-only snapshot of the credit book
func reportPortfolio(
	creditRepo repository.CreditRepository,
	realEstateRepo repository.RealEstateCreditRepository,
	repaymentRepo repository.RepaymentRepository,
) {
	log.Println("Running portfolio report job...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, status := range []domain.CreditStatus{
		domain.CreditStatusPending,
		domain.CreditStatusAccepted,
		domain.CreditStatusRejected,
	} {
		count, err := creditRepo.CountByStatus(ctx, status)
		if err != nil {
			log.Printf("Error counting credits with status %s: %v", status, err)
			continue
		}
		log.Printf("Credits %s: %d", status, count)
	}

	for _, propertyType := range []domain.PropertyType{
		domain.PropertyTypeApartment,
		domain.PropertyTypeHouse,
		domain.PropertyTypeCommercial,
	} {
		count, err := realEstateRepo.CountByPropertyType(ctx, propertyType)
		if err != nil {
			log.Printf("Error counting real estate credits for %s: %v", propertyType, err)
			continue
		}
		log.Printf("Real estate credits %s: %d", propertyType, count)
	}

	for _, repaymentType := range []domain.RepaymentType{
		domain.RepaymentTypeInstallment,
		domain.RepaymentTypeEarly,
	} {
		count, err := repaymentRepo.CountByType(ctx, repaymentType)
		if err != nil {
			log.Printf("Error counting repayments of type %s: %v", repaymentType, err)
			continue
		}
		log.Printf("Repayments %s: %d", repaymentType, count)
	}

	log.Println("Portfolio report job finished")
}
