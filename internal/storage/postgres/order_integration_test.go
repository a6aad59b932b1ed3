//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/xenking/satdesk-webhooks/internal/domain/order"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "satdesk",
				"POSTGRES_PASSWORD": "satdesk",
				"POSTGRES_DB":       "satdesk",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://satdesk:satdesk@%s:%s/satdesk?sslmode=disable", host, port.Port())
	pool, err := NewPool(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, RunMigrations(ctx, pool))
	// Schema is idempotent.
	require.NoError(t, RunMigrations(ctx, pool))
	return pool
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newOrder(id string, total string, createdAt time.Time) *order.Order {
	amount := decimal.RequireFromString(total)
	return &order.Order{
		ID:          id,
		OrderNumber: "1001",
		Source:      order.SourceWebsite,
		Status:      order.StatusNew,
		CreatedAt:   createdAt,
		ReceivedAt:  testNow,
		Customer: order.Customer{
			Name:              "Ana Silva",
			EmergencyContacts: []order.EmergencyContact{{Name: "Rui Silva", Relationship: "brother"}},
		},
		Rental: order.Rental{
			StartDate:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			Duration:        14,
			DeviceCount:     2,
			EstimatedAmount: amount,
		},
		Payment:    order.Payment{Method: "card", Amount: amount, Currency: "EUR"},
		Metadata:   []byte(`{"utm_source":"newsletter"}`),
		RawPayload: []byte(`{"order": {"orderId": "` + id + `"}}`),
	}
}

func TestOrderRepository_Integration(t *testing.T) {
	pool := startPostgres(t)
	repo := NewOrderRepository(pool)
	ctx := context.Background()

	t.Run("upsert replaces", func(t *testing.T) {
		replaced, err := repo.Upsert(ctx, newOrder("W-100", "250", testNow))
		require.NoError(t, err)
		assert.False(t, replaced)

		_, err = repo.UpdateStatus(ctx, "W-100", order.StatusUpdate{
			Status:   order.StatusProcessing,
			RentalID: "R-1",
			IMEIs:    []string{"490154203237518"},
			At:       testNow,
		})
		require.NoError(t, err)

		replaced, err = repo.Upsert(ctx, newOrder("W-100", "300", testNow))
		require.NoError(t, err)
		assert.True(t, replaced)

		got, err := repo.Get(ctx, "W-100")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(300).Equal(got.Rental.EstimatedAmount))
		assert.True(t, decimal.NewFromInt(300).Equal(got.Payment.Amount))
		assert.Equal(t, order.StatusNew, got.Status)
		assert.Empty(t, got.RentalID)
		assert.Empty(t, got.AssignedIMEIs)
		assert.Nil(t, got.UpdatedAt)
		assert.Equal(t, `{"order": {"orderId": "W-100"}}`, string(got.RawPayload))
		assert.JSONEq(t, `{"utm_source":"newsletter"}`, string(got.Metadata))
		assert.Equal(t, "Rui Silva", got.Customer.EmergencyContacts[0].Name)
		assert.Equal(t, testNow, got.CreatedAt)
	})

	t.Run("get not found", func(t *testing.T) {
		_, err := repo.Get(ctx, "missing")
		require.ErrorIs(t, err, order.ErrNotFound)
		_, err = repo.Cancel(ctx, "missing", "x", testNow)
		require.ErrorIs(t, err, order.ErrNotFound)
	})

	t.Run("update status keeps unset fields", func(t *testing.T) {
		_, err := repo.Upsert(ctx, newOrder("W-200", "10.50", testNow.Add(-time.Hour)))
		require.NoError(t, err)

		_, err = repo.UpdateStatus(ctx, "W-200", order.StatusUpdate{
			Status: order.StatusProcessing, RentalID: "R-2", IMEIs: []string{"490154203237518"}, At: testNow,
		})
		require.NoError(t, err)

		got, err := repo.UpdateStatus(ctx, "W-200", order.StatusUpdate{
			Status: order.StatusCompleted, At: testNow.Add(time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, got.Status)
		assert.Equal(t, "R-2", got.RentalID)
		assert.Equal(t, []string{"490154203237518"}, got.AssignedIMEIs)
		require.NotNil(t, got.UpdatedAt)
		assert.Equal(t, testNow.Add(time.Minute), *got.UpdatedAt)
		assert.True(t, decimal.RequireFromString("10.50").Equal(got.Payment.Amount))
	})

	t.Run("cancel and list", func(t *testing.T) {
		_, err := repo.Upsert(ctx, newOrder("W-300", "5", testNow.Add(-2*time.Hour)))
		require.NoError(t, err)

		got, err := repo.Cancel(ctx, "W-300", "duplicate booking", testNow)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, got.Status)
		assert.Equal(t, "duplicate booking", got.CancelReason)
		require.NotNil(t, got.CancelledAt)

		cancelled, err := repo.List(ctx, order.StatusCancelled)
		require.NoError(t, err)
		require.Len(t, cancelled, 1)
		assert.Equal(t, "W-300", cancelled[0].ID)

		all, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "W-100", all[0].ID)
		assert.Equal(t, "W-200", all[1].ID)
		assert.Equal(t, "W-300", all[2].ID)
	})
}
