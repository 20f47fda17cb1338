package reservation

import (
	"fmt"
	"math"
	"sync"
	"time"

	"restaurant-ops/internal/models"
)

// DefaultCapacity is the seating ceiling applied when none is configured
const DefaultCapacity = 50

// DefaultSuggestedMenu replaces the advisor's suggestion when it fails
const DefaultSuggestedMenu = "standard daily menu"

// MenuAdvisor is the external menu-advisory collaborator. Its failures
// are absorbed locally, never propagated.
type MenuAdvisor interface {
	SuggestMenu(date string) (string, error)
}

// CapacityError reports a booking that would exceed the seating ceiling
type CapacityError struct {
	Date      string
	Requested int
	Capacity  int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity on %s: requested %d seats of %d", e.Date, e.Requested, e.Capacity)
}

// NotFoundError reports a cancellation for an unknown reservation number
type NotFoundError struct {
	Number int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("reservation %d not found", e.Number)
}

// Ledger owns the per-date reservation lists. Dates are YYYY-MM-DD keys;
// the capacity check and the append happen under one lock so two
// concurrent bookings can never overbook a date.
type Ledger struct {
	mu         sync.Mutex
	capacity   int
	advisor    MenuAdvisor
	byDate     map[string][]models.Reservation
	nextNumber int
}

// NewLedger creates a reservation ledger with the given seating capacity.
// A non-positive capacity falls back to DefaultCapacity. The advisor may
// be nil, in which case every booking carries the default menu.
func NewLedger(capacity int, advisor MenuAdvisor) *Ledger {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Ledger{
		capacity:   capacity,
		advisor:    advisor,
		byDate:     make(map[string][]models.Reservation),
		nextNumber: 1,
	}
}

// CheckCapacity reports whether a party of the given size still fits on
// the date
func (l *Ledger) CheckCapacity(date string, partySize int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.fits(date, partySize)
}

func (l *Ledger) fits(date string, partySize int) bool {
	booked := 0
	for _, reservation := range l.byDate[date] {
		booked += reservation.PartySize
	}
	return booked+partySize <= l.capacity
}

// Book reserves a table for the party on the given date. The menu
// suggestion comes from the advisor; if the advisor fails the booking
// still succeeds with the default menu.
func (l *Ledger) Book(date string, partySize int, clientName string) (models.Reservation, error) {
	if partySize < 1 {
		return models.Reservation{}, fmt.Errorf("party size must be positive")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.fits(date, partySize) {
		return models.Reservation{}, CapacityError{Date: date, Requested: partySize, Capacity: l.capacity}
	}

	reservation := models.Reservation{
		Number:        l.nextNumber,
		Date:          date,
		PartySize:     partySize,
		ClientName:    clientName,
		SuggestedMenu: l.suggestMenu(date),
		BookedAt:      time.Now(),
	}
	l.nextNumber++
	l.byDate[date] = append(l.byDate[date], reservation)

	return reservation, nil
}

func (l *Ledger) suggestMenu(date string) string {
	if l.advisor == nil {
		return DefaultSuggestedMenu
	}
	menu, err := l.advisor.SuggestMenu(date)
	if err != nil {
		return DefaultSuggestedMenu
	}
	return menu
}

// ReservationsFor returns a copy of the reservations for the date,
// empty if there are none
func (l *Ledger) ReservationsFor(date string) []models.Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]models.Reservation(nil), l.byDate[date]...)
}

// Cancel removes the reservation with the given number and returns it.
// The date of a reservation is not indexed by number, so every date
// partition is searched.
func (l *Ledger) Cancel(number int) (models.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for date, reservations := range l.byDate {
		for i, reservation := range reservations {
			if reservation.Number != number {
				continue
			}
			l.byDate[date] = append(reservations[:i:i], reservations[i+1:]...)
			if len(l.byDate[date]) == 0 {
				delete(l.byDate, date)
			}
			return reservation, nil
		}
	}

	return models.Reservation{}, NotFoundError{Number: number}
}

// Statistics summarizes the active reservations
func (l *Ledger) Statistics() models.ReservationStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := models.ReservationStats{DaysWithReservations: len(l.byDate)}
	for _, reservations := range l.byDate {
		stats.TotalReservations += len(reservations)
		for _, reservation := range reservations {
			stats.TotalGuests += reservation.PartySize
		}
	}

	if stats.TotalReservations > 0 {
		average := float64(stats.TotalGuests) / float64(stats.TotalReservations)
		stats.AveragePartySize = math.Round(average*10) / 10
	}
	return stats
}
