package database

import (
	"testing"

	"finease-server/internal/config"
	"finease-server/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestTransaction inserts a valid stored record for tests.
func CreateTestTransaction(t *testing.T, db *DB, ownerEmail, txType, category, amount, date string) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Type:       txType,
		Category:   category,
		Amount:     amount,
		Date:       date,
		OwnerEmail: ownerEmail,
		OwnerName:  "Test User",
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM transactions").Error; err != nil {
		t.Logf("failed to cleanup transactions table: %v", err)
	}
}
