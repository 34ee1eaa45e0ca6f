package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// Booking is a time-boxed reservation of an item, subject to owner approval.
// Start and End are stored at whole-second precision.
type Booking struct {
	ID       int64         `json:"id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	ItemID   int64         `json:"item_id"`
	BookerID int64         `json:"booker_id"`
	Status   BookingStatus `json:"status"`
	Item     *Item         `json:"item,omitempty"`   // Populated on reads
	Booker   *User         `json:"booker,omitempty"` // Populated on reads
}

// BookingFilter selects bookings relative to "now" or by status in list queries.
type BookingFilter string

const (
	BookingFilterAll      BookingFilter = "ALL"
	BookingFilterCurrent  BookingFilter = "CURRENT"
	BookingFilterPast     BookingFilter = "PAST"
	BookingFilterFuture   BookingFilter = "FUTURE"
	BookingFilterWaiting  BookingFilter = "WAITING"
	BookingFilterRejected BookingFilter = "REJECTED"
)

// ParseBookingFilter parses a state query parameter, case-insensitively.
// An empty value defaults to ALL.
func ParseBookingFilter(s string) (BookingFilter, error) {
	if s == "" {
		return BookingFilterAll, nil
	}
	switch f := BookingFilter(strings.ToUpper(s)); f {
	case BookingFilterAll, BookingFilterCurrent, BookingFilterPast,
		BookingFilterFuture, BookingFilterWaiting, BookingFilterRejected:
		return f, nil
	}
	return "", Validationf("unknown state: %s", s)
}
