// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// TransactionFilters restricts a transaction listing.
// All fields are pointers to distinguish "not set" from zero values.
type TransactionFilters struct {
	StartDate *time.Time // Inclusive
	EndDate   *time.Time // Inclusive
	Category  *string
	Type      *TransactionType
}

// Matches reports whether t satisfies every constraint that is set.
// Dates compare by calendar day, so a filter bound equal to the transaction date matches.
func (f TransactionFilters) Matches(t *Transaction) bool {
	day := CalendarDay(t.Date)
	if f.StartDate != nil && day.Before(CalendarDay(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && day.After(CalendarDay(*f.EndDate)) {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	return true
}
