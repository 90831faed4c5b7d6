package queries_test

import (
	"testing"

	"parcelpilot/internal/core/application/usecases/queries"
	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query, err := queries.NewGetParcelQuery("PP-1A2B3C4D5E6F")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "PP-1A2B3C4D5E6F", query.TrackingID())
	})

	t.Run("should reject empty tracking id", func(t *testing.T) {
		_, err := queries.NewGetParcelQuery("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetParcelQuery
		require.Error(t, query.Validate())
	})
}

func TestNewRiderParcelsQuery(t *testing.T) {
	t.Run("should accept both worklists", func(t *testing.T) {
		for _, worklist := range []queries.Worklist{queries.PendingWorklist, queries.CompletedWorklist} {
			query, err := queries.NewRiderParcelsQuery("rafi@example.com", worklist)

			require.NoError(t, err)
			assert.Equal(t, worklist, query.Worklist())
		}
	})

	t.Run("should reject unknown worklist", func(t *testing.T) {
		_, err := queries.NewRiderParcelsQuery("rafi@example.com", "archived")
		require.ErrorIs(t, err, queries.ErrUnknownWorklist)
	})

	t.Run("should reject empty rider email", func(t *testing.T) {
		_, err := queries.NewRiderParcelsQuery("", queries.PendingWorklist)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewRiderSummaryQuery(t *testing.T) {
	t.Run("should reject empty rider email", func(t *testing.T) {
		_, err := queries.NewRiderSummaryQuery("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewTrackingHistoryQuery(t *testing.T) {
	t.Run("should reject empty tracking id", func(t *testing.T) {
		_, err := queries.NewTrackingHistoryQuery("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewGetPaymentQuery(t *testing.T) {
	t.Run("should reject zero payment id", func(t *testing.T) {
		_, err := queries.NewGetPaymentQuery(kernel.UUID{})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should create valid query", func(t *testing.T) {
		paymentID := kernel.NewUUID()

		query, err := queries.NewGetPaymentQuery(paymentID)

		require.NoError(t, err)
		assert.True(t, paymentID.IsEqual(query.PaymentID()))
	})
}

func TestNewListParcelsQuery(t *testing.T) {
	query := queries.NewListParcelsQuery("alice@example.com", "unpaid", "Created")

	require.NoError(t, query.Validate())
	assert.Equal(t, "alice@example.com", query.SenderEmail())
	assert.Equal(t, "unpaid", query.PaymentStatus())
	assert.Equal(t, "Created", query.DeliveryStatus())
}
