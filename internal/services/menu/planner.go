package menu

import (
	"fmt"
	"math"
	"time"

	"restaurant-ops/internal/models"
)

// DefaultMenu is served whenever the weather collaborator is unavailable
const DefaultMenu = "standard daily menu"

// WeatherService is the external weather collaborator. Temperature
// failures fall back to the default menu; humidity failures fall back
// to a neutral 50%.
type WeatherService interface {
	Temperature(date string) (float64, error)
	Humidity(date string) (float64, error)
}

// Planner chooses daily menus from the weather
type Planner struct {
	weather WeatherService
}

// NewPlanner creates a planner backed by the given weather collaborator
func NewPlanner(weather WeatherService) *Planner {
	return &Planner{weather: weather}
}

// DailyMenu chooses the menu text for the date. It never fails: any
// weather error yields the default menu.
func (p *Planner) DailyMenu(date string) string {
	if p.weather == nil {
		return DefaultMenu
	}

	temperature, err := p.weather.Temperature(date)
	if err != nil {
		return DefaultMenu
	}

	humidity, err := p.weather.Humidity(date)
	if err != nil {
		humidity = 50
	}

	switch {
	case temperature > 25:
		if humidity > 70 {
			return "fresh salad and gazpacho with iced drinks"
		}
		return "fresh salad and gazpacho"
	case temperature < 10:
		if humidity > 80 {
			return "hot soup and pot-au-feu with warm bread"
		}
		return "hot soup and pot-au-feu"
	case temperature > 18:
		return "balanced daily special with a fresh option"
	default:
		return "balanced daily special"
	}
}

// SuggestMenu implements the menu-advisory contract consumed by the
// reservation ledger
func (p *Planner) SuggestMenu(date string) (string, error) {
	return p.DailyMenu(date), nil
}

// PlanWeek plans the menus of the seven days starting at the given date
func (p *Planner) PlanWeek(start time.Time) []models.MenuDay {
	week := make([]models.MenuDay, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		date := day.Format("2006-01-02")
		week = append(week, models.MenuDay{
			Date:    date,
			Weekday: day.Weekday().String(),
			Menu:    p.DailyMenu(date),
		})
	}
	return week
}

// GenerateMenuSheet builds the menu of the day from the available dishes.
// The recommended dish is the first one flagged as such, or the first
// dish if none is.
func GenerateMenuSheet(restaurant, chef string, dishes []models.Dish) (models.MenuSheet, error) {
	if len(dishes) == 0 {
		return models.MenuSheet{}, fmt.Errorf("no dishes available")
	}

	sheet := models.MenuSheet{
		Date:            time.Now().Format("2006-01-02"),
		Restaurant:      restaurant,
		Chef:            chef,
		Dishes:          make([]models.Dish, 0, len(dishes)),
		RecommendedDish: dishes[0].Name,
		DishCount:       len(dishes),
	}

	var totalPrice float64
	for _, dish := range dishes {
		if dish.Description == "" {
			dish.Description = "house-made dish"
		}
		sheet.Dishes = append(sheet.Dishes, dish)
		sheet.TotalCalories += dish.Calories
		totalPrice += dish.Price
	}

	for _, dish := range dishes {
		if dish.Recommended {
			sheet.RecommendedDish = dish.Name
			break
		}
	}

	sheet.AveragePrice = math.Round(totalPrice / float64(len(dishes)))
	return sheet, nil
}
