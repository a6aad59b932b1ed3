package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/satdesk-webhooks/internal/domain/order"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newOrder(id string, amount int64) *order.Order {
	return &order.Order{
		ID:        id,
		Source:    order.SourceWebsite,
		Status:    order.StatusNew,
		CreatedAt: testNow,
		Customer: order.Customer{
			Name:              "Ana Silva",
			EmergencyContacts: []order.EmergencyContact{{Name: "Rui Silva"}},
		},
		Rental:     order.Rental{EstimatedAmount: decimal.NewFromInt(amount)},
		Metadata:   []byte(`{}`),
		RawPayload: []byte(`{"order":{}}`),
	}
}

func TestOrderRepository_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	replaced, err := repo.Upsert(ctx, newOrder("W-100", 250))
	require.NoError(t, err)
	assert.False(t, replaced)

	_, err = repo.UpdateStatus(ctx, "W-100", order.StatusUpdate{
		Status:   order.StatusProcessing,
		RentalID: "R-1",
		At:       testNow,
	})
	require.NoError(t, err)

	replaced, err = repo.Upsert(ctx, newOrder("W-100", 300))
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, 1, repo.Len())

	got, err := repo.Get(ctx, "W-100")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(got.Rental.EstimatedAmount))
	assert.Equal(t, order.StatusNew, got.Status)
	assert.Empty(t, got.RentalID)
	assert.Nil(t, got.UpdatedAt)
}

func TestOrderRepository_GetNotFound(t *testing.T) {
	repo := NewOrderRepository()

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, order.ErrNotFound)

	_, err = repo.UpdateStatus(context.Background(), "missing", order.StatusUpdate{Status: order.StatusCompleted})
	require.ErrorIs(t, err, order.ErrNotFound)

	_, err = repo.Cancel(context.Background(), "missing", "x", testNow)
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestOrderRepository_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	in := newOrder("W-1", 10)
	_, err := repo.Upsert(ctx, in)
	require.NoError(t, err)

	// Mutating the caller's value after Upsert must not leak into the store.
	in.Customer.Name = "changed"

	got, err := repo.Get(ctx, "W-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", got.Customer.Name)

	got.Customer.EmergencyContacts[0].Name = "changed"
	got.Metadata[0] = 'X'

	again, err := repo.Get(ctx, "W-1")
	require.NoError(t, err)
	assert.Equal(t, "Rui Silva", again.Customer.EmergencyContacts[0].Name)
	assert.Equal(t, `{}`, string(again.Metadata))
}

func TestOrderRepository_ListFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	for i := range 4 {
		_, err := repo.Upsert(ctx, newOrder(fmt.Sprintf("W-%d", i), 1))
		require.NoError(t, err)
	}
	_, err := repo.Cancel(ctx, "W-2", "duplicate", testNow)
	require.NoError(t, err)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	cancelled, err := repo.List(ctx, order.StatusCancelled)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "W-2", cancelled[0].ID)
	assert.Equal(t, "duplicate", cancelled[0].CancelReason)
	require.NotNil(t, cancelled[0].CancelledAt)
	assert.Equal(t, testNow, *cancelled[0].CancelledAt)

	processing, err := repo.List(ctx, order.StatusProcessing)
	require.NoError(t, err)
	assert.Empty(t, processing)
}

func TestOrderRepository_UpdateStatusKeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	_, err := repo.Upsert(ctx, newOrder("W-1", 1))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "W-1", order.StatusUpdate{
		Status:   order.StatusProcessing,
		RentalID: "R-7",
		IMEIs:    []string{"490154203237518"},
		At:       testNow,
	})
	require.NoError(t, err)

	got, err := repo.UpdateStatus(ctx, "W-1", order.StatusUpdate{
		Status: order.StatusCompleted,
		At:     testNow.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, got.Status)
	assert.Equal(t, "R-7", got.RentalID)
	assert.Equal(t, []string{"490154203237518"}, got.AssignedIMEIs)
	require.NotNil(t, got.UpdatedAt)
	assert.Equal(t, testNow.Add(time.Hour), *got.UpdatedAt)
}

func TestOrderRepository_ConcurrentUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	const workers = 32
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted int
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			replaced, err := repo.Upsert(ctx, newOrder("W-100", int64(i)))
			assert.NoError(t, err)
			if !replaced {
				mu.Lock()
				inserted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, inserted)
	assert.Equal(t, 1, repo.Len())
}
