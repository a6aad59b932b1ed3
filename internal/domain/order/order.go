package order

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusNew        Status = "new"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{StatusNew, StatusProcessing, StatusCompleted, StatusCancelled}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// SourceWebsite marks orders that arrived through the e-commerce webhook.
const SourceWebsite = "website"

var (
	// ErrNotFound is returned when no order has the requested id.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidStatus is returned for a status outside the known set.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrCancelRequired is returned when a status update tries to cancel an
	// order. Cancellation goes through Service.Cancel so it carries a reason
	// and a timestamp.
	ErrCancelRequired = errors.New("orders are cancelled with DELETE")
)

// Order is a rental order received from the website. Customer, rental and
// payment are point-in-time snapshots taken when the webhook was accepted.
type Order struct {
	ID          string
	OrderNumber string
	Source      string
	Status      Status
	CreatedAt   time.Time
	ReceivedAt  time.Time

	Customer Customer
	Rental   Rental
	Payment  Payment

	// Metadata is the sender's passthrough object, always a JSON object.
	Metadata json.RawMessage
	// RawPayload is the request body exactly as received.
	RawPayload json.RawMessage

	RentalID      string
	AssignedIMEIs []string
	UpdatedAt     *time.Time
	CancelReason  string
	CancelledAt   *time.Time
}

// Customer is the renter as described by the order form.
type Customer struct {
	Name              string             `json:"name"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	Identity          IdentityDocument   `json:"identity"`
	DateOfBirth       string             `json:"dateOfBirth"`
	Gender            string             `json:"gender"`
	Address           Address            `json:"address"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
}

// IdentityDocument is the passport or national id the renter presented.
type IdentityDocument struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// Address is a postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// EmergencyContact is a flattened contact; Name joins first and last name.
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// Rental describes the requested rental period and devices.
type Rental struct {
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	Duration        int             `json:"duration"`
	DeviceCount     int             `json:"deviceCount"`
	Destination     string          `json:"destination"`
	EstimatedAmount decimal.Decimal `json:"estimatedAmount"`
}

// Payment is the payment state reported by the shop.
type Payment struct {
	Method   string          `json:"method"`
	Status   string          `json:"status"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	PaidDate *time.Time      `json:"paidDate,omitempty"`
}

// StatusUpdate carries the fields an operator may change on an order.
type StatusUpdate struct {
	Status   Status
	RentalID string
	IMEIs    []string
	At       time.Time
}

// Clone returns a deep copy of o.
func (o *Order) Clone() *Order {
	c := *o
	c.Customer.EmergencyContacts = slices.Clone(o.Customer.EmergencyContacts)
	c.Metadata = slices.Clone(o.Metadata)
	c.RawPayload = slices.Clone(o.RawPayload)
	c.AssignedIMEIs = slices.Clone(o.AssignedIMEIs)
	if o.Payment.PaidDate != nil {
		t := *o.Payment.PaidDate
		c.Payment.PaidDate = &t
	}
	if o.UpdatedAt != nil {
		t := *o.UpdatedAt
		c.UpdatedAt = &t
	}
	if o.CancelledAt != nil {
		t := *o.CancelledAt
		c.CancelledAt = &t
	}
	return &c
}

// Repository persists orders keyed by id.
//
// Upsert must be atomic with respect to its lookup-then-replace sequence.
type Repository interface {
	// Upsert stores o, replacing any order with the same id. It reports
	// whether an existing order was replaced.
	Upsert(ctx context.Context, o *Order) (replaced bool, err error)
	Get(ctx context.Context, id string) (*Order, error)
	// List returns orders with the given status, or all orders when status
	// is empty. Ordering is left to the caller.
	List(ctx context.Context, status Status) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, upd StatusUpdate) (*Order, error)
	Cancel(ctx context.Context, id, reason string, at time.Time) (*Order, error)
}
