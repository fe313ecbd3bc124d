package entity

import "time"

// DirectoryFilter is a domain-level filter for personnel and patient listings.
// Used by repository layer to avoid coupling with delivery DTOs.
type DirectoryFilter struct {
	Type PersonnelType // exact match; empty means any type
	Name string        // case-insensitive substring; empty means no filter
}

// SessionFilter is a domain-level filter for session listings.
type SessionFilter struct {
	Type SessionType
	From *time.Time // inclusive
	To   *time.Time // inclusive
}
