package domain

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	tests := map[string]string{
		(User{}).TableName():        "users",
		(Tag{}).TableName():         "tags",
		(Payment{}).TableName():     "payment",
		(Shipment{}).TableName():    "shipment",
		(Idempotency{}).TableName(): "idempotency",
	}
	for got, want := range tests {
		if got != want {
			t.Fatalf("TableName() = %q; want %q", got, want)
		}
	}
}

func TestMigrations_Indexes_AndConstraints(t *testing.T) {
	db := newDomainDB(t)

	if err := db.AutoMigrate(&User{}, &Tag{}, &Payment{}, &Shipment{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()

	for _, tbl := range []any{&User{}, &Tag{}, &Payment{}, &Shipment{}} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}
	if !m.HasIndex(&User{}, "ux_users_username") || !m.HasIndex(&User{}, "ux_users_email") {
		t.Fatalf("expected unique indexes on users")
	}
	if !m.HasIndex(&Tag{}, "ux_tags_name") {
		t.Fatalf("expected unique index ux_tags_name on tags")
	}

	now := time.Now().UTC()

	// Unique tag name.
	if err := db.Create(&Tag{ID: "t1", Name: "books", CreatedAt: now}).Error; err != nil {
		t.Fatalf("insert tag: %v", err)
	}
	if err := db.Create(&Tag{ID: "t2", Name: "books", CreatedAt: now}).Error; err == nil {
		t.Fatalf("expected unique violation on tags.name")
	}

	// Status default and check constraint.
	u := &User{ID: "u1", Username: "ada", Email: "ada@example.com"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("insert user: %v", err)
	}
	var got User
	if err := db.First(&got, "id = ?", "u1").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if got.Status != UserActive {
		t.Fatalf("expected default status ACTIVE, got %q", got.Status)
	}
	bad := &User{ID: "u2", Username: "bob", Email: "bob@example.com", Status: "BANNED"}
	if err := db.Create(bad).Error; err == nil {
		t.Fatalf("expected check constraint violation for status BANNED")
	}

	// Soft delete keeps the shipment row.
	s := &Shipment{ID: "s1", Carrier: "UPS", EstDeliveryDate: now.Add(48 * time.Hour)}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("insert shipment: %v", err)
	}
	if err := db.Delete(&Shipment{}, "id = ?", "s1").Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	var n int64
	db.Unscoped().Model(&Shipment{}).Where("id = ?", "s1").Count(&n)
	if n != 1 {
		t.Fatalf("expected soft-deleted row to remain, count=%d", n)
	}
	db.Model(&Shipment{}).Where("id = ?", "s1").Count(&n)
	if n != 0 {
		t.Fatalf("expected soft-deleted row hidden from default scope, count=%d", n)
	}

	// Payments default to unauthorized.
	p := &Payment{ID: "p1", Message: "pending"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("insert payment: %v", err)
	}
	var gp Payment
	if err := db.First(&gp, "id = ?", "p1").Error; err != nil || gp.Authorized {
		t.Fatalf("unexpected payment: %+v err=%v", gp, err)
	}
}
