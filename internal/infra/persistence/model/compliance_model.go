package model

import (
	"time"

	"github.com/google/uuid"
)

// AgencyComplianceModel mirrors the 'agency_compliances' table. The composite
// unique index on (agency_id, compliance_type) guarantees at most one status
// row per document type and backs the upsert path.
type AgencyComplianceModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AgencyID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_agency_compliances_on_pair"`
	ComplianceType string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_agency_compliances_on_pair"`
	DocumentURL    *string    `gorm:"type:text"`
	IsVerified     bool       `gorm:"not null;default:false"`
	VerifiedBy     *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt     *time.Time
	IsActive       bool       `gorm:"not null;default:true"`
	Notes          *string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgencyComplianceModel) TableName() string {
	return "agency_compliances"
}
