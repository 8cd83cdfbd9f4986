// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Agency is the aggregate root of the staffing directory: a construction
// staffing agency with its descriptive profile and audit attribution.
// Identity is immutable; LastEditedAt/LastEditedBy are set only by a
// successful mutating operation, never by the caller directly.
type Agency struct {
	ID           uuid.UUID  `json:"id"`             // The unique identifier of the agency.
	Name         string     `json:"name"`           // Display name of the agency.
	Slug         string     `json:"slug"`           // URL-safe identifier used by the public directory.
	About        string     `json:"about"`          // Free-text description shown on the profile page.
	Phone        string     `json:"phone"`          // Contact phone number.
	Email        string     `json:"email"`          // Contact email; rejection notifications are sent here.
	Website      string     `json:"website"`        // Public website URL.
	FoundedYear  int        `json:"founded_year"`   // Year the agency was founded.
	SizeClass    SizeClass  `json:"size_class"`     // Headcount bracket of the agency.
	IsActive     bool       `json:"is_active"`      // Whether the agency is listed publicly.
	IsFeatured   bool       `json:"is_featured"`    // Whether the agency is promoted on browse pages.
	IsClaimed    bool       `json:"is_claimed"`     // Whether an owner has claimed this listing.
	LastEditedAt *time.Time `json:"last_edited_at"` // Timestamp of the last successful admin mutation.
	LastEditedBy *uuid.UUID `json:"last_edited_by"` // Identity of the admin who performed it.
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Touch records audit attribution for a successful mutation.
func (a *Agency) Touch(editorID uuid.UUID, at time.Time) {
	a.LastEditedAt = &at
	a.LastEditedBy = &editorID
}
