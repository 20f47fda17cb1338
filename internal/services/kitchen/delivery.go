package kitchen

import "fmt"

// DeliveryService is the external delivery collaborator. Its failures
// propagate to the caller.
type DeliveryService interface {
	Deliver(dish, address, instructions string) (string, error)
}

// OrderDelivery validates the request and hands the dish to the
// delivery collaborator
func OrderDelivery(dish, address, instructions string, service DeliveryService) (string, error) {
	if dish == "" || address == "" {
		return "", fmt.Errorf("dish and address are required")
	}

	if service == nil {
		return "", fmt.Errorf("delivery service is required")
	}

	return service.Deliver(dish, address, instructions)
}
