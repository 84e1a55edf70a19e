package mysql

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	listingDomain "lively-marketplace/internal/domain/listing"
	orderDomain "lively-marketplace/internal/domain/order"
	payoutDomain "lively-marketplace/internal/domain/payout"
	productDomain "lively-marketplace/internal/domain/product"
	userDomain "lively-marketplace/internal/domain/user"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The
// domain models avoid MySQL-only column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userDomain.User{}, &productDomain.Product{}, &orderDomain.Order{},
		&listingDomain.Listing{}, &listingDomain.Position{}, &payoutDomain.Request{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
