package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"restaurant-backend/entity"
	"restaurant-backend/repository"
)

// SettingsService manages the per-store settings singleton, created
// lazily with defaults on first access.
type SettingsService struct {
	settings *repository.FileStore[entity.RestaurantSettings]
}

func NewSettingsService(settings *repository.FileStore[entity.RestaurantSettings]) *SettingsService {
	return &SettingsService{settings: settings}
}

func (s *SettingsService) Get() (*entity.RestaurantSettings, error) {
	all := s.settings.GetAll()
	if len(all) > 0 {
		return &all[0], nil
	}
	def := entity.DefaultSettings()
	if err := s.settings.Add(*def); err != nil {
		return nil, err
	}
	return def, nil
}

type UpdateSettingsIn struct {
	DeliveryCost        *decimal.Decimal `json:"deliveryCost"`
	DeliveryTimeMinutes *int             `json:"deliveryTimeMinutes"`
	MinimumOrderAmount  *decimal.Decimal `json:"minimumOrderAmount"`
}

func (s *SettingsService) Update(in UpdateSettingsIn) (*entity.RestaurantSettings, error) {
	cur, err := s.Get()
	if err != nil {
		return nil, err
	}
	if in.DeliveryCost != nil {
		if in.DeliveryCost.IsNegative() {
			return nil, errors.New("delivery cost cannot be negative")
		}
		cur.DeliveryCost = *in.DeliveryCost
	}
	if in.DeliveryTimeMinutes != nil {
		if *in.DeliveryTimeMinutes < 0 {
			return nil, errors.New("delivery time cannot be negative")
		}
		cur.DeliveryTimeMinutes = *in.DeliveryTimeMinutes
	}
	if in.MinimumOrderAmount != nil {
		if in.MinimumOrderAmount.IsNegative() {
			return nil, errors.New("minimum order amount cannot be negative")
		}
		cur.MinimumOrderAmount = *in.MinimumOrderAmount
	}
	if err := s.settings.Update(*cur); err != nil {
		return nil, err
	}
	return cur, nil
}
