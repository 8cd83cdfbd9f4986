// Package model contains the GORM structs mirroring the database schema.
// They are exported so the GORM Gen tool can reference them from cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AgencyModel mirrors the 'agencies' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AgencyModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Slug         string     `gorm:"type:varchar(255);unique;not null"`
	About        string     `gorm:"type:text"`
	Phone        string     `gorm:"type:varchar(50)"`
	Email        string     `gorm:"type:varchar(255)"`
	Website      string     `gorm:"type:varchar(255)"`
	FoundedYear  int        `gorm:"type:smallint"`
	SizeClass    string     `gorm:"type:varchar(20)"`
	IsActive     bool       `gorm:"not null;default:true;index"`
	IsFeatured   bool       `gorm:"not null;default:false"`
	IsClaimed    bool       `gorm:"not null;default:false"`
	LastEditedAt *time.Time
	LastEditedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Trades  []*TradeModel  `gorm:"many2many:agency_trades;joinForeignKey:AgencyID;joinReferences:TradeID"`
	Regions []*RegionModel `gorm:"many2many:agency_regions;joinForeignKey:AgencyID;joinReferences:RegionID"`
}

// TableName explicitly sets the table name for GORM.
func (AgencyModel) TableName() string {
	return "agencies"
}
