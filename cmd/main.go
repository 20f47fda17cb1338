package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"restaurant-ops/internal/config"
	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/models"
	"restaurant-ops/internal/services/inventory"
	"restaurant-ops/internal/services/kitchen"
	"restaurant-ops/internal/services/menu"
	"restaurant-ops/internal/services/notification"
	"restaurant-ops/internal/services/order"
	"restaurant-ops/internal/services/reservation"
)

// staticWeather stands in for the external weather collaborator, which
// the system never calls for real.
type staticWeather struct {
	temperature float64
	humidity    float64
}

func (w staticWeather) Temperature(date string) (float64, error) { return w.temperature, nil }

func (w staticWeather) Humidity(date string) (float64, error) { return w.humidity, nil }

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to the configuration file")
		capacity   = flag.Int("capacity", 0, "Seating capacity override (0 uses the configured value)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *capacity > 0 {
		cfg.Restaurant.Capacity = *capacity
	}

	log := logger.New(cfg.Service.Name)
	requestID := logger.GenerateRequestID()

	log.Info("service_started", fmt.Sprintf("Starting %s", cfg.Service.Name), requestID, map[string]interface{}{
		"capacity":          cfg.Restaurant.Capacity,
		"expiry_alert_days": cfg.Restaurant.ExpiryAlertDays,
	})

	ledger := inventory.NewDefaultLedger()
	recipes := kitchen.DefaultRegistry()
	orders := order.NewManager(ledger, recipes, log)
	planner := menu.NewPlanner(staticWeather{temperature: 22, humidity: 55})
	reservations := reservation.NewLedger(cfg.Restaurant.Capacity, planner)
	notifications := notification.NewService(log)

	// A service run: a couple of orders against the stock, a booking, a
	// cancellation, and the end-of-day summaries.
	orders.PlaceOrder([]models.OrderItem{{Type: "margherita", Quantity: 2, Price: 12.5}})
	orders.PlaceOrder([]models.OrderItem{
		{Type: "margherita", Quantity: 1, Price: 12.5},
		{Type: "calzone", Quantity: 1, Price: 14},
	})

	booking, err := reservations.Book(time.Now().AddDate(0, 0, 1).Format("2006-01-02"), 4, "Dupont")
	if err != nil {
		log.Error("booking_failed", "Could not book the table", requestID, err, nil)
	} else {
		notifications.Send(booking.ClientName,
			fmt.Sprintf("table booked for %d on %s, suggested menu: %s", booking.PartySize, booking.Date, booking.SuggestedMenu),
			models.NotificationInfo)
	}

	toCancel, err := reservations.Book(time.Now().AddDate(0, 0, 2).Format("2006-01-02"), 2, "Martin")
	if err == nil {
		if _, err := reservations.Cancel(toCancel.Number); err != nil {
			log.Error("cancellation_failed", "Could not cancel the reservation", requestID, err, nil)
		}
	}

	for _, record := range ledger.ExpiringWithin(cfg.Restaurant.ExpiryAlertDays) {
		log.Info("expiry_alert", fmt.Sprintf("%s expires soon", record.Name), requestID, map[string]interface{}{
			"ingredient": record.Name,
			"quantity":   record.Quantity,
			"unit":       record.Unit,
			"expiry":     record.ExpiryDate.Format("2006-01-02"),
		})
	}

	orderStats := orders.Statistics()
	reservationStats := reservations.Statistics()
	log.Info("service_stopped", "End of service", requestID, map[string]interface{}{
		"orders_total":         orderStats.Total,
		"orders_succeeded":     orderStats.Succeeded,
		"success_rate_percent": orderStats.SuccessRatePercent,
		"reservations":         reservationStats.TotalReservations,
		"guests":               reservationStats.TotalGuests,
		"stock_value":          ledger.TotalValue(),
	})
}
