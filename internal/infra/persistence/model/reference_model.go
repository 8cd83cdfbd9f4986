package model

import (
	"time"

	"github.com/google/uuid"
)

// TradeModel mirrors the 'trades' reference table.
type TradeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TradeModel) TableName() string {
	return "trades"
}

// RegionModel mirrors the 'regions' reference table.
type RegionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(100);unique;not null"`
	StateCode string    `gorm:"type:varchar(2);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regions"
}

// AgencyTradeModel mirrors the 'agency_trades' join table. The composite
// uniqueness of (agency_id, trade_id) backs the reconciler's
// upsert-on-conflict semantics.
type AgencyTradeModel struct {
	AgencyID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TradeID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgencyTradeModel) TableName() string {
	return "agency_trades"
}

// AgencyRegionModel mirrors the 'agency_regions' join table.
type AgencyRegionModel struct {
	AgencyID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	RegionID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgencyRegionModel) TableName() string {
	return "agency_regions"
}
