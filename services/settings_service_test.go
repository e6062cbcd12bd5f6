package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/entity"
	"restaurant-backend/repository"
)

func TestSettingsService_LazyDefaults(t *testing.T) {
	env := newTestEnv(t, false)

	s, err := env.settings.Get()
	require.NoError(t, err)
	assert.True(t, s.DeliveryCost.Equal(dec(t, "15")))
	assert.Equal(t, 45, s.DeliveryTimeMinutes)
	assert.True(t, s.MinimumOrderAmount.Equal(dec(t, "30")))

	// Singleton: the second access returns the same record.
	again, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, s.ID, again.ID)
	assert.Len(t, env.settingsStore.GetAll(), 1)
}

func TestSettingsService_UpdatePersists(t *testing.T) {
	env := newTestEnv(t, false)
	_, err := env.settings.Get()
	require.NoError(t, err)

	cost := dec(t, "20")
	minutes := 30
	updated, err := env.settings.Update(UpdateSettingsIn{
		DeliveryCost:        &cost,
		DeliveryTimeMinutes: &minutes,
	})
	require.NoError(t, err)
	assert.True(t, updated.DeliveryCost.Equal(cost))
	assert.Equal(t, 30, updated.DeliveryTimeMinutes)
	assert.True(t, updated.MinimumOrderAmount.Equal(dec(t, "30")), "untouched field keeps its value")

	reloaded, err := repository.NewFileStore[entity.RestaurantSettings](env.dir, "settings.json")
	require.NoError(t, err)
	all := reloaded.GetAll()
	require.Len(t, all, 1)
	assert.True(t, all[0].DeliveryCost.Equal(cost))
}

func TestSettingsService_UpdateValidation(t *testing.T) {
	env := newTestEnv(t, false)
	bad := dec(t, "-1")

	_, err := env.settings.Update(UpdateSettingsIn{DeliveryCost: &bad})
	assert.Error(t, err)
	_, err = env.settings.Update(UpdateSettingsIn{MinimumOrderAmount: &bad})
	assert.Error(t, err)
}
