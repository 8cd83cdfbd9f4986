// Package repository defines the persistence interfaces the domain depends
// on, implemented by the infra layer.
package repository

import "crewdir/internal/errors"

// Sentinel errors returned by repositories so use cases can translate them
// into the application error taxonomy.
var (
	ErrAgencyNotFound     = errors.New("agency not found")
	ErrComplianceNotFound = errors.New("compliance record not found")
	ErrTradeNotFound      = errors.New("trade not found")
	ErrRegionNotFound     = errors.New("region not found")
)
