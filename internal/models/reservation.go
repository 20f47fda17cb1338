package models

import "time"

// Reservation represents a booked table for one party on one date.
// Date is a calendar day in YYYY-MM-DD form and acts as the partition key.
type Reservation struct {
	Number        int       `json:"number"`
	Date          string    `json:"date"`
	PartySize     int       `json:"party_size"`
	ClientName    string    `json:"client_name"`
	SuggestedMenu string    `json:"suggested_menu"`
	BookedAt      time.Time `json:"booked_at"`
}

// ReservationStats summarizes the reservation ledger
type ReservationStats struct {
	TotalReservations    int     `json:"total_reservations"`
	TotalGuests          int     `json:"total_guests"`
	AveragePartySize     float64 `json:"average_party_size"`
	DaysWithReservations int     `json:"days_with_reservations"`
}
