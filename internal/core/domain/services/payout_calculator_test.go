package services_test

import (
	"testing"
	"time"

	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/parcel"
	"parcelpilot/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createParcel(t *testing.T, cost float64, senderDistrict, receiverDistrict string) *parcel.Parcel {
	t.Helper()
	sender, err := kernel.NewDistrict(senderDistrict)
	require.NoError(t, err)
	receiver, err := kernel.NewDistrict(receiverDistrict)
	require.NoError(t, err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(), "PP-1A2B3C4D5E6F",
		"Alice Rahman", "alice@example.com", sender,
		"Bob Karim", "12 Lake Road", receiver,
		cost, time.Now().UTC(),
	)
	require.NoError(t, err)
	return p
}

func TestPayoutCalculator_Earning(t *testing.T) {
	calculator := services.NewPayoutCalculator()

	t.Run("same district pays 80 percent", func(t *testing.T) {
		p := createParcel(t, 100, "Mirpur", "Mirpur")

		earning, err := calculator.Earning(p)

		require.NoError(t, err)
		assert.InDelta(t, 80.0, earning, 1e-9)
	})

	t.Run("cross district pays 30 percent", func(t *testing.T) {
		p := createParcel(t, 100, "Mirpur", "Uttara")

		earning, err := calculator.Earning(p)

		require.NoError(t, err)
		assert.InDelta(t, 30.0, earning, 1e-9)
	})

	t.Run("district match ignores case", func(t *testing.T) {
		p := createParcel(t, 200, "Mirpur", "mirpur")

		earning, err := calculator.Earning(p)

		require.NoError(t, err)
		assert.InDelta(t, 160.0, earning, 1e-9)
	})

	t.Run("should reject unconstructed parcel", func(t *testing.T) {
		_, err := calculator.Earning(&parcel.Parcel{})

		require.ErrorIs(t, err, parcel.ErrParcelIsNotConstructed)
	})
}
