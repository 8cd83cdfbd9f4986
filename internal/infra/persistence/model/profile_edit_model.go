package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// StringList stores an ordered list of strings as a jsonb column.
type StringList []string

// Value implements driver.Valuer for jsonb serialization.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}

	encoded, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(err, "marshal string list")
	}

	return encoded, nil
}

// Scan implements sql.Scanner for jsonb deserialization.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}

		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported string list source type %T", value)
	}

	if err := json.Unmarshal(raw, l); err != nil {
		return errors.Wrap(err, "unmarshal string list")
	}

	return nil
}

// AgencyProfileEditModel mirrors the 'agency_profile_edits' audit table.
// Rows are append-only; there is no UpdatedAt or soft delete.
type AgencyProfileEditModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AgencyID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	EditorID  uuid.UUID  `gorm:"type:uuid;not null"`
	FieldName string     `gorm:"type:varchar(100);not null"`
	OldValue  StringList `gorm:"type:jsonb;not null;default:'[]'"`
	NewValue  StringList `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AgencyProfileEditModel) TableName() string {
	return "agency_profile_edits"
}
