package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the restaurant system
type Config struct {
	Restaurant RestaurantConfig `yaml:"restaurant"`
	Service    ServiceConfig    `yaml:"service"`
}

// RestaurantConfig holds the operational limits of the restaurant
type RestaurantConfig struct {
	Capacity        int `yaml:"capacity"`
	ExpiryAlertDays int `yaml:"expiry_alert_days"`
}

// ServiceConfig holds service-level settings
type ServiceConfig struct {
	Name string `yaml:"name"`
}

// Default returns the configuration used when no file overrides it
func Default() *Config {
	return &Config{
		Restaurant: RestaurantConfig{
			Capacity:        50,
			ExpiryAlertDays: 7,
		},
		Service: ServiceConfig{
			Name: "restaurant-ops",
		},
	}
}

// Load reads configuration from a YAML file
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	config := Default()
	scanner := bufio.NewScanner(file)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Check for section headers
		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
			currentSection = strings.TrimSuffix(line, ":")
			continue
		}

		// Parse key-value pairs
		if strings.Contains(line, ":") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if err := config.setValue(currentSection, key, value); err != nil {
				return nil, fmt.Errorf("failed to set config value %s.%s: %w", currentSection, key, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return config, nil
}

// setValue sets a configuration value based on section and key
func (c *Config) setValue(section, key, value string) error {
	switch section {
	case "restaurant":
		return c.setRestaurantValue(key, value)
	case "service":
		return c.setServiceValue(key, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

// setRestaurantValue sets restaurant configuration values
func (c *Config) setRestaurantValue(key, value string) error {
	switch key {
	case "capacity":
		capacity, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid capacity value: %w", err)
		}
		if capacity < 1 {
			return fmt.Errorf("capacity must be positive")
		}
		c.Restaurant.Capacity = capacity
	case "expiry_alert_days":
		days, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid expiry_alert_days value: %w", err)
		}
		c.Restaurant.ExpiryAlertDays = days
	default:
		return fmt.Errorf("unknown restaurant key: %s", key)
	}
	return nil
}

// setServiceValue sets service configuration values
func (c *Config) setServiceValue(key, value string) error {
	switch key {
	case "name":
		c.Service.Name = value
	default:
		return fmt.Errorf("unknown service key: %s", key)
	}
	return nil
}
