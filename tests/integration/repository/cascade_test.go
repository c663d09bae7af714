package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendcore/credit-engine/internal/config"
	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/repository"
)

var testDB *sqlx.DB

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	teardown()
	os.Exit(code)
}

func setup() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Connect to the postgres database to create the test database
	cfg.Database.Name = "postgres"
	adminDB, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to postgres database: %v", err))
	}
	defer adminDB.Close()

	testDBName := "credit_engine_test"
	adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", testDBName))
	if _, err = adminDB.Exec(fmt.Sprintf("CREATE DATABASE %s", testDBName)); err != nil {
		panic(fmt.Sprintf("Failed to create test database: %v", err))
	}

	cfg.Database.Name = testDBName
	testDB, err = sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to test database: %v", err))
	}

	if err := executeSchemaSQL(testDB); err != nil {
		panic(fmt.Sprintf("Failed to initialize database schema: %v", err))
	}
}

func teardown() {
	if testDB != nil {
		testDB.Close()
	}

	cfg, _ := config.Load()
	cfg.Database.Name = "postgres"

	adminDB, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return
	}
	defer adminDB.Close()

	adminDB.Exec("DROP DATABASE IF EXISTS credit_engine_test")
}

func executeSchemaSQL(db *sqlx.DB) error {
	sqlBytes, err := os.ReadFile("../../../migrations/000001_init.up.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema migration: %w", err)
	}

	if _, err = db.Exec(string(sqlBytes)); err != nil {
		return fmt.Errorf("failed to execute schema migration: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) *sqlx.DB {
	cleanupTestData(testDB)
	return testDB
}

func cleanupTestData(db *sqlx.DB) {
	db.Exec("DELETE FROM repayments")
	db.Exec("DELETE FROM credits")
	db.Exec("DELETE FROM clients")
}

func seedClient(t *testing.T, db *sqlx.DB, name, email string) *domain.Client {
	t.Helper()

	client := &domain.Client{Name: name, Email: email}
	require.NoError(t, repository.NewClientRepository(db).Create(context.Background(), client))
	return client
}

func seedPersonalCredit(t *testing.T, db *sqlx.DB, clientID int64, motif string) *domain.Credit {
	t.Helper()

	credit := &domain.Credit{
		RequestDate:    time.Now(),
		Status:         domain.CreditStatusPending,
		Amount:         decimal.NewFromInt(10000),
		DurationMonths: 24,
		InterestRate:   decimal.NewFromFloat(3.5),
		ClientID:       clientID,
		Type:           domain.CreditTypePersonal,
		Personal:       &domain.PersonalCreditInfo{Motif: motif},
	}
	require.NoError(t, repository.NewCreditRepository(db).Create(context.Background(), credit))
	return credit
}

func seedRepayment(t *testing.T, db *sqlx.DB, creditID int64) *domain.Repayment {
	t.Helper()

	repayment := &domain.Repayment{
		Date:     time.Now(),
		Amount:   decimal.NewFromInt(500),
		Type:     domain.RepaymentTypeInstallment,
		CreditID: creditID,
	}
	require.NoError(t, repository.NewRepaymentRepository(db).Create(context.Background(), repayment))
	return repayment
}

func countRows(t *testing.T, db *sqlx.DB, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Get(&count, query, args...))
	return count
}

func TestClientRepository_DeleteByID_RemovesOwnedCreditsAndRepayments(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	clientRepo := repository.NewClientRepository(db)

	client := seedClient(t, db, "Alice Martin", "alice@example.com")
	other := seedClient(t, db, "Bruno Keller", "bruno@example.com")

	first := seedPersonalCredit(t, db, client.ID, "travaux")
	second := seedPersonalCredit(t, db, client.ID, "voiture")
	kept := seedPersonalCredit(t, db, other.ID, "voyage")

	seedRepayment(t, db, first.ID)
	seedRepayment(t, db, first.ID)
	seedRepayment(t, db, second.ID)
	seedRepayment(t, db, second.ID)
	seedRepayment(t, db, kept.ID)

	err := clientRepo.DeleteByID(ctx, client.ID)
	require.NoError(t, err)

	exists, err := clientRepo.ExistsByID(ctx, client.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Zero(t, countRows(t, db, "SELECT COUNT(*) FROM credits WHERE client_id = $1", client.ID))
	assert.Zero(t, countRows(t, db, "SELECT COUNT(*) FROM repayments WHERE credit_id IN ($1, $2)", first.ID, second.ID))

	// The other client's subtree is untouched
	remaining, err := repository.NewCreditRepository(db).FindByClientID(ctx, other.ID)
	require.NoError(t, err)
	if assert.Len(t, remaining, 1) {
		assert.Equal(t, kept.ID, remaining[0].ID)
		assert.Len(t, remaining[0].Repayments, 1)
	}
}

func TestCreditRepository_DeleteByID_RemovesOwnedRepayments(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	creditRepo := repository.NewCreditRepository(db)
	repaymentRepo := repository.NewRepaymentRepository(db)

	client := seedClient(t, db, "Alice Martin", "alice@example.com")
	doomed := seedPersonalCredit(t, db, client.ID, "travaux")
	sibling := seedPersonalCredit(t, db, client.ID, "voiture")

	seedRepayment(t, db, doomed.ID)
	seedRepayment(t, db, doomed.ID)
	keptRepayment := seedRepayment(t, db, sibling.ID)

	err := creditRepo.DeleteByID(ctx, doomed.ID)
	require.NoError(t, err)

	exists, err := creditRepo.ExistsByID(ctx, doomed.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Zero(t, countRows(t, db, "SELECT COUNT(*) FROM repayments WHERE credit_id = $1", doomed.ID))

	// The sibling credit keeps its repayment and the client row survives
	repayments, err := repaymentRepo.FindByCreditID(ctx, sibling.ID)
	require.NoError(t, err)
	if assert.Len(t, repayments, 1) {
		assert.Equal(t, keptRepayment.ID, repayments[0].ID)
	}

	clientExists, err := repository.NewClientRepository(db).ExistsByID(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, clientExists)
}

func TestClientRepository_Create_DuplicateEmailAllowed(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	clientRepo := repository.NewClientRepository(db)

	first := seedClient(t, db, "Alice Martin", "shared@example.com")
	second := seedClient(t, db, "Alice Durand", "shared@example.com")
	assert.NotEqual(t, first.ID, second.ID)

	// Email is a lookup key, not a unique constraint: the lookup returns the
	// first match
	found, err := clientRepo.FindByEmail(ctx, "shared@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}
