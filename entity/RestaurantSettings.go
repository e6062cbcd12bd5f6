package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantSettings is a singleton record per store, created lazily with
// defaults on first access.
type RestaurantSettings struct {
	ID                  uuid.UUID       `json:"id"`
	DeliveryCost        decimal.Decimal `json:"deliveryCost"`
	DeliveryTimeMinutes int             `json:"deliveryTimeMinutes"`
	MinimumOrderAmount  decimal.Decimal `json:"minimumOrderAmount"`
}

func DefaultSettings() *RestaurantSettings {
	return &RestaurantSettings{
		ID:                  uuid.New(),
		DeliveryCost:        decimal.NewFromFloat(15.0),
		DeliveryTimeMinutes: 45,
		MinimumOrderAmount:  decimal.NewFromFloat(30.0),
	}
}

func (s RestaurantSettings) EntityID() uuid.UUID { return s.ID }
