package reservation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-ops/internal/models"
)

type staticAdvisor struct {
	menu string
	err  error
}

func (a staticAdvisor) SuggestMenu(date string) (string, error) {
	return a.menu, a.err
}

func TestBook(t *testing.T) {
	ledger := NewLedger(50, staticAdvisor{menu: "fresh salad and gazpacho"})

	reservation, err := ledger.Book("2026-09-04", 4, "Dupont")
	require.NoError(t, err)

	assert.Equal(t, 1, reservation.Number)
	assert.Equal(t, "2026-09-04", reservation.Date)
	assert.Equal(t, 4, reservation.PartySize)
	assert.Equal(t, "Dupont", reservation.ClientName)
	assert.Equal(t, "fresh salad and gazpacho", reservation.SuggestedMenu)
	assert.False(t, reservation.BookedAt.IsZero())

	booked := ledger.ReservationsFor("2026-09-04")
	require.Len(t, booked, 1)
	assert.Equal(t, reservation.Number, booked[0].Number)
}

func TestBook_CapacityExceeded(t *testing.T) {
	ledger := NewLedger(50, nil)

	first, err := ledger.Book("2026-09-04", 30, "Dupont")
	require.NoError(t, err)

	_, err = ledger.Book("2026-09-04", 25, "Martin")
	var capacityErr CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, "2026-09-04", capacityErr.Date)

	// the first booking survives and the other date is unaffected
	booked := ledger.ReservationsFor("2026-09-04")
	require.Len(t, booked, 1)
	assert.Equal(t, first.Number, booked[0].Number)

	_, err = ledger.Book("2026-09-05", 25, "Martin")
	assert.NoError(t, err)
}

func TestBook_ExactCapacityFits(t *testing.T) {
	ledger := NewLedger(50, nil)

	_, err := ledger.Book("2026-09-04", 30, "Dupont")
	require.NoError(t, err)
	_, err = ledger.Book("2026-09-04", 20, "Martin")
	require.NoError(t, err)

	assert.False(t, ledger.CheckCapacity("2026-09-04", 1))
}

func TestBook_InvalidPartySize(t *testing.T) {
	ledger := NewLedger(50, nil)

	_, err := ledger.Book("2026-09-04", 0, "Dupont")
	require.Error(t, err)
	assert.Empty(t, ledger.ReservationsFor("2026-09-04"))
}

func TestBook_AdvisorFailureFallsBackToDefaultMenu(t *testing.T) {
	ledger := NewLedger(50, staticAdvisor{err: errors.New("weather service down")})

	reservation, err := ledger.Book("2026-09-04", 2, "Dupont")
	require.NoError(t, err)
	assert.Equal(t, DefaultSuggestedMenu, reservation.SuggestedMenu)
}

func TestCancel(t *testing.T) {
	ledger := NewLedger(50, nil)
	ledger.Book("2026-09-04", 4, "Dupont")
	second, _ := ledger.Book("2026-09-05", 2, "Martin")

	// cancellation searches every date partition
	cancelled, err := ledger.Cancel(second.Number)
	require.NoError(t, err)
	assert.Equal(t, "Martin", cancelled.ClientName)
	assert.Empty(t, ledger.ReservationsFor("2026-09-05"))
	require.Len(t, ledger.ReservationsFor("2026-09-04"), 1)

	// cancelling twice fails
	_, err = ledger.Cancel(second.Number)
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, second.Number, notFound.Number)

	// cancelled seats become available again
	_, err = ledger.Book("2026-09-05", 50, "Grande Tablée")
	assert.NoError(t, err)
}

func TestCancel_UnknownNumber(t *testing.T) {
	ledger := NewLedger(50, nil)

	_, err := ledger.Cancel(7)
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestNumbersStayMonotonicAcrossCancellations(t *testing.T) {
	ledger := NewLedger(50, nil)

	first, _ := ledger.Book("2026-09-04", 2, "Dupont")
	_, err := ledger.Cancel(first.Number)
	require.NoError(t, err)

	second, _ := ledger.Book("2026-09-04", 2, "Martin")
	assert.Equal(t, first.Number+1, second.Number)
}

func TestStatistics(t *testing.T) {
	ledger := NewLedger(50, nil)
	assert.Equal(t, models.ReservationStats{}, ledger.Statistics())

	ledger.Book("2026-09-04", 4, "Dupont")
	ledger.Book("2026-09-04", 2, "Martin")
	ledger.Book("2026-09-05", 3, "Durand")

	stats := ledger.Statistics()
	assert.Equal(t, 3, stats.TotalReservations)
	assert.Equal(t, 9, stats.TotalGuests)
	assert.Equal(t, 3.0, stats.AveragePartySize)
	assert.Equal(t, 2, stats.DaysWithReservations)

	// average is rounded to one decimal
	ledger.Book("2026-09-06", 4, "Petit")
	assert.Equal(t, 3.3, ledger.Statistics().AveragePartySize)
}

func TestDefaultCapacityApplied(t *testing.T) {
	ledger := NewLedger(0, nil)

	_, err := ledger.Book("2026-09-04", DefaultCapacity, "Banquet")
	require.NoError(t, err)
	assert.False(t, ledger.CheckCapacity("2026-09-04", 1))
}
