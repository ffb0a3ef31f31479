// Package domain defines the persistence models for users, tags, payments,
// and shipments. These types are mapped with GORM and form the core data
// layer of the e-commerce API.
package domain

import (
	"encoding/xml"
	"time"

	"gorm.io/gorm"
)

// User status values.
const (
	UserActive   = "ACTIVE"
	UserInactive = "INACTIVE"
)

// User is a registered customer account.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Username, Email: unique, stored in normalized (case-folded) form.
//   - Status: ACTIVE or INACTIVE (enforced by DB constraint).
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//
// Users are hard-deleted so a removed account releases its username and
// email for reuse.
type User struct {
	XMLName   xml.Name  `json:"-" xml:"user" gorm:"-" swaggerignore:"true"`
	ID        string    `json:"id"         xml:"id"         gorm:"type:char(36);primaryKey"`
	Username  string    `json:"username"   xml:"username"   gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	FirstName string    `json:"firstName"  xml:"firstName"  gorm:"type:varchar(128)"`
	LastName  string    `json:"lastName"   xml:"lastName"   gorm:"type:varchar(128)"`
	Email     string    `json:"email"      xml:"email"      gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	Phone     string    `json:"phone"      xml:"phone"      gorm:"type:varchar(32)"`
	Status    string    `json:"status"     xml:"status"     gorm:"type:varchar(16);not null;default:'ACTIVE';check:status IN ('ACTIVE','INACTIVE')"`
	CreatedAt time.Time `json:"createdAt"  xml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"  xml:"updatedAt"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Tag labels products and catalog entries. Name is required and unique.
// Like users, tags are hard-deleted so the name can be reused.
type Tag struct {
	XMLName   xml.Name  `json:"-" xml:"tag" gorm:"-" swaggerignore:"true"`
	ID        string    `json:"id"        xml:"id"        gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"      xml:"name"      gorm:"type:varchar(255);not null;uniqueIndex:ux_tags_name"`
	CreatedAt time.Time `json:"createdAt" xml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" xml:"updatedAt"`
}

// TableName returns the database table name for Tag.
func (Tag) TableName() string { return "tags" }

// Payment records the outcome of a payment authorization.
// Message carries the processor's explanation (e.g. a decline reason).
type Payment struct {
	XMLName    xml.Name  `json:"-" xml:"payment" gorm:"-" swaggerignore:"true"`
	ID         string    `json:"id"         xml:"id"         gorm:"type:char(36);primaryKey"`
	Authorized bool      `json:"authorized" xml:"authorized" gorm:"not null;default:false"`
	Message    string    `json:"message"    xml:"message"    gorm:"type:varchar(512)"`
	CreatedAt  time.Time `json:"createdAt"  xml:"createdAt"  gorm:"index"`
	UpdatedAt  time.Time `json:"updatedAt"  xml:"updatedAt"`
}

// TableName returns the database table name for Payment.
func (Payment) TableName() string { return "payment" }

// Shipment tracks a parcel handed to a carrier with its estimated delivery.
type Shipment struct {
	XMLName         xml.Name       `json:"-" xml:"shipment" gorm:"-" swaggerignore:"true"`
	ID              string         `json:"id"              xml:"id"              gorm:"type:char(36);primaryKey"`
	EstDeliveryDate time.Time      `json:"estDeliveryDate" xml:"estDeliveryDate" gorm:"not null"`
	Carrier         string         `json:"carrier"         xml:"carrier"         gorm:"type:varchar(128);not null;index"`
	CreatedAt       time.Time      `json:"createdAt"       xml:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"       xml:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-"               xml:"-"               gorm:"index"`
}

// TableName returns the database table name for Shipment.
func (Shipment) TableName() string { return "shipment" }
