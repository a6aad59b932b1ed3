package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockOrderRepo struct {
	byID      map[string]*Order
	upsertErr error
	listErr   error
	lastPatch StatusUpdate
}

func newMockRepo(orders ...*Order) *mockOrderRepo {
	m := &mockOrderRepo{byID: make(map[string]*Order)}
	for _, o := range orders {
		m.byID[o.ID] = o
	}
	return m
}

func (m *mockOrderRepo) Upsert(_ context.Context, o *Order) (bool, error) {
	if m.upsertErr != nil {
		return false, m.upsertErr
	}
	_, ok := m.byID[o.ID]
	m.byID[o.ID] = o.Clone()
	return ok, nil
}

func (m *mockOrderRepo) Get(_ context.Context, id string) (*Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o.Clone(), nil
}

func (m *mockOrderRepo) List(_ context.Context, status Status) ([]Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []Order
	for _, o := range m.byID {
		if status == "" || o.Status == status {
			out = append(out, *o.Clone())
		}
	}
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id string, upd StatusUpdate) (*Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	m.lastPatch = upd
	o.Status = upd.Status
	if upd.RentalID != "" {
		o.RentalID = upd.RentalID
	}
	at := upd.At
	o.UpdatedAt = &at
	return o.Clone(), nil
}

func (m *mockOrderRepo) Cancel(_ context.Context, id, reason string, at time.Time) (*Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = StatusCancelled
	o.CancelReason = reason
	o.CancelledAt = &at
	o.UpdatedAt = &at
	return o.Clone(), nil
}

// --- Helpers ---

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func newTestOrder(id string, created time.Time, status Status) *Order {
	return &Order{
		ID:          id,
		OrderNumber: "N-" + id,
		Source:      SourceWebsite,
		Status:      status,
		CreatedAt:   created,
		Rental: Rental{
			DeviceCount:     1,
			EstimatedAmount: decimal.NewFromInt(100),
		},
		Metadata: []byte(`{}`),
	}
}

// --- Tests ---

func TestReceive_NewOrder(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	o := newTestOrder("W-1", fixedNow, "")
	o.Source = ""
	res, err := svc.Receive(context.Background(), o)
	require.NoError(t, err)

	assert.False(t, res.Replaced)
	assert.Equal(t, StatusNew, res.Order.Status)
	assert.Equal(t, SourceWebsite, res.Order.Source)
	assert.Equal(t, fixedNow, res.Order.ReceivedAt)
	require.Contains(t, repo.byID, "W-1")
}

func TestReceive_ReplacesExisting(t *testing.T) {
	existing := newTestOrder("W-1", fixedNow, StatusCompleted)
	existing.RentalID = "R-9"
	repo := newMockRepo(existing)
	svc := newTestService(repo)

	next := newTestOrder("W-1", fixedNow, "")
	next.Rental.EstimatedAmount = decimal.NewFromInt(300)
	res, err := svc.Receive(context.Background(), next)
	require.NoError(t, err)

	assert.True(t, res.Replaced)
	stored := repo.byID["W-1"]
	assert.Equal(t, StatusNew, stored.Status)
	assert.Empty(t, stored.RentalID)
	assert.True(t, decimal.NewFromInt(300).Equal(stored.Rental.EstimatedAmount))
	assert.Len(t, repo.byID, 1)
}

func TestReceive_EmptyID(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, err := svc.Receive(context.Background(), &Order{})
	require.Error(t, err)
}

func TestReceive_RepoError(t *testing.T) {
	repo := newMockRepo()
	repo.upsertErr = errors.New("db write failed")
	svc := newTestService(repo)

	_, err := svc.Receive(context.Background(), newTestOrder("W-1", fixedNow, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert order")
}

func TestList_NewestFirst(t *testing.T) {
	repo := newMockRepo(
		newTestOrder("a", fixedNow.Add(-2*time.Hour), StatusNew),
		newTestOrder("b", fixedNow, StatusNew),
		newTestOrder("c", fixedNow.Add(-time.Hour), StatusCompleted),
		newTestOrder("d", fixedNow, StatusNew),
	)
	svc := newTestService(repo)

	orders, err := svc.List(context.Background(), "")
	require.NoError(t, err)

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids)
}

func TestList_FilterByStatus(t *testing.T) {
	repo := newMockRepo(
		newTestOrder("a", fixedNow, StatusNew),
		newTestOrder("b", fixedNow, StatusCancelled),
	)
	svc := newTestService(repo)

	orders, err := svc.List(context.Background(), StatusCancelled)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "b", orders[0].ID)

	_, err = svc.List(context.Background(), Status("archived"))
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := newMockRepo(newTestOrder("W-1", fixedNow, StatusNew))
	svc := newTestService(repo)

	o, err := svc.UpdateStatus(context.Background(), "W-1", StatusProcessing, " R-42 ", []string{"490154203237518"})
	require.NoError(t, err)

	assert.Equal(t, StatusProcessing, o.Status)
	assert.Equal(t, "R-42", o.RentalID)
	require.NotNil(t, o.UpdatedAt)
	assert.Equal(t, fixedNow, *o.UpdatedAt)
	assert.Equal(t, []string{"490154203237518"}, repo.lastPatch.IMEIs)
}

func TestUpdateStatus_Errors(t *testing.T) {
	repo := newMockRepo(newTestOrder("W-1", fixedNow, StatusNew))
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "W-1", Status("shipped"), "", nil)
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "missing", StatusCompleted, "", nil)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateStatus(ctx, "W-1", StatusCompleted, "", []string{"490154203237519"})
	var imeiErr *InvalidIMEIError
	require.ErrorAs(t, err, &imeiErr)
	assert.Equal(t, "490154203237519", imeiErr.IMEI)
	assert.Equal(t, StatusNew, repo.byID["W-1"].Status)
}

func TestUpdateStatus_CancelledRejected(t *testing.T) {
	repo := newMockRepo(newTestOrder("W-1", fixedNow, StatusProcessing))
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), "W-1", StatusCancelled, "", nil)
	require.ErrorIs(t, err, ErrCancelRequired)

	o := repo.byID["W-1"]
	assert.Equal(t, StatusProcessing, o.Status)
	assert.Empty(t, o.CancelReason)
	assert.Nil(t, o.CancelledAt)
}

func TestCancel_IsNonDestructive(t *testing.T) {
	repo := newMockRepo(newTestOrder("W-1", fixedNow, StatusProcessing))
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Cancel(ctx, "W-1", "customer changed plans")
	require.NoError(t, err)

	o, err := svc.Get(ctx, "W-1")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, o.Status)
	assert.Equal(t, "customer changed plans", o.CancelReason)
	require.NotNil(t, o.CancelledAt)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCancel_DefaultReason(t *testing.T) {
	repo := newMockRepo(newTestOrder("W-1", fixedNow, StatusNew))
	svc := newTestService(repo)

	o, err := svc.Cancel(context.Background(), "W-1", "   ")
	require.NoError(t, err)
	assert.Equal(t, DefaultCancelReason, o.CancelReason)

	_, err = svc.Cancel(context.Background(), "missing", "x")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStats_Consistency(t *testing.T) {
	var orders []*Order
	for i := range 40 {
		status := Statuses[i%len(Statuses)]
		created := fixedNow.Add(-time.Duration(i*6) * time.Hour)
		orders = append(orders, newTestOrder(fmt.Sprintf("W-%d", i), created, status))
	}
	svc := newTestService(newMockRepo(orders...))

	st, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 40, st.Total)
	sum := 0
	for _, status := range Statuses {
		assert.Equal(t, 10, st.ByStatus[status], "status %s", status)
		sum += st.ByStatus[status]
	}
	assert.Equal(t, st.Total, sum)
	// Created every 6h going back: 0,6,12,18,24 are within 24h inclusive.
	assert.Equal(t, 5, st.Last24Hours)
	// 0..168h inclusive: i*6 <= 168 -> i <= 28.
	assert.Equal(t, 29, st.Last7Days)
}

func TestStats_Empty(t *testing.T) {
	svc := newTestService(newMockRepo())

	st, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.Total)
	assert.Len(t, st.ByStatus, len(Statuses))
}
