package tests

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/models"
	"restaurant-ops/internal/services/inventory"
	"restaurant-ops/internal/services/kitchen"
	"restaurant-ops/internal/services/menu"
	"restaurant-ops/internal/services/notification"
	"restaurant-ops/internal/services/order"
	"restaurant-ops/internal/services/reservation"
)

type calmWeather struct{}

func (calmWeather) Temperature(date string) (float64, error) { return 20, nil }

func (calmWeather) Humidity(date string) (float64, error) { return 60, nil }

// RestaurantSuite drives a full service across every ledger: stock is
// consumed by orders, tables are booked and cancelled, and the
// statistics line up at the end.
type RestaurantSuite struct {
	suite.Suite
	ledger        *inventory.Ledger
	baseline      inventory.Snapshot
	orders        *order.Manager
	reservations  *reservation.Ledger
	notifications *notification.Service
}

func (s *RestaurantSuite) SetupTest() {
	log := logger.New("restaurant-suite")
	s.ledger = inventory.NewDefaultLedger()
	s.baseline = s.ledger.Snapshot()
	s.orders = order.NewManager(s.ledger, kitchen.DefaultRegistry(), log)
	s.reservations = reservation.NewLedger(50, menu.NewPlanner(calmWeather{}))
	s.notifications = notification.NewService(log)
}

func (s *RestaurantSuite) TestLunchService() {
	// two successful orders and one with an unknown dish
	first := s.orders.PlaceOrder([]models.OrderItem{{Type: "margherita", Quantity: 2, Price: 12.5}})
	s.Equal(models.StatusSucceeded, first.Status)

	second := s.orders.PlaceOrder([]models.OrderItem{
		{Type: "margherita", Quantity: 1, Price: 12.5},
		{Type: "calzone", Quantity: 1, Price: 14},
	})
	s.Equal(models.StatusPartiallyFailed, second.Status)

	// three margheritas consumed in total
	record, ok := s.ledger.GetStock("pate_pizza")
	s.Require().True(ok)
	s.InDelta(5, record.Quantity, 1e-9)
	record, _ = s.ledger.GetStock("tomates")
	s.InDelta(9.4, record.Quantity, 1e-9)

	stats := s.orders.Statistics()
	s.Equal(2, stats.Total)
	s.Equal(1, stats.Succeeded)
	s.Equal(0, stats.Failed)
	s.Equal(50, stats.SuccessRatePercent)
	s.Len(s.orders.History(), 2)
}

func (s *RestaurantSuite) TestEveningBookings() {
	booking, err := s.reservations.Book("2026-09-04", 30, "Dupont")
	s.Require().NoError(err)
	s.Equal("balanced daily special with a fresh option", booking.SuggestedMenu)
	s.notifications.Send(booking.ClientName, "table booked", models.NotificationInfo)

	_, err = s.reservations.Book("2026-09-04", 25, "Martin")
	var capacityErr reservation.CapacityError
	s.Require().ErrorAs(err, &capacityErr)

	// the refused party books the next day instead
	overflow, err := s.reservations.Book("2026-09-05", 25, "Martin")
	s.Require().NoError(err)

	cancelled, err := s.reservations.Cancel(overflow.Number)
	s.Require().NoError(err)
	s.Equal("Martin", cancelled.ClientName)
	s.Empty(s.reservations.ReservationsFor("2026-09-05"))

	stats := s.reservations.Statistics()
	s.Equal(1, stats.TotalReservations)
	s.Equal(30, stats.TotalGuests)
	s.Equal(30.0, stats.AveragePartySize)
	s.Equal(1, stats.DaysWithReservations)

	s.Len(s.notifications.UnreadFor("Dupont"), 1)
}

func (s *RestaurantSuite) TestSnapshotRestoreBetweenScenarios() {
	s.orders.PlaceOrder([]models.OrderItem{{Type: "margherita", Quantity: 5, Price: 12.5}})
	record, _ := s.ledger.GetStock("basilic")
	s.InDelta(0, record.Quantity, 1e-9)

	s.ledger.Restore(s.baseline)
	record, _ = s.ledger.GetStock("basilic")
	s.InDelta(5, record.Quantity, 1e-9)
	s.InDelta(98, s.ledger.TotalValue(), 1e-9)
}

func TestRestaurantSuite(t *testing.T) {
	suite.Run(t, new(RestaurantSuite))
}
