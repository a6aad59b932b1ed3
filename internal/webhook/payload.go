package webhook

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/satdesk-webhooks/internal/domain/order"
)

// ErrMalformedPayload is returned when a delivery body cannot be mapped to an
// order. Wrapped errors name the offending field.
var ErrMalformedPayload = errors.New("malformed webhook payload")

// Payload is the order-created body sent by the website. Every block is
// optional at the JSON level; Transform decides what is required.
type Payload struct {
	Order    *OrderBlock     `json:"order"`
	Customer *CustomerBlock  `json:"customer"`
	Rental   *RentalBlock    `json:"rental"`
	Payment  *PaymentBlock   `json:"payment"`
	Metadata json.RawMessage `json:"metadata"`
}

// OrderBlock identifies the order. OrderID takes precedence over ID.
type OrderBlock struct {
	OrderID     string `json:"orderId"`
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`
	OrderDate   string `json:"orderDate"`
}

// CustomerBlock is the renter as entered on the checkout form.
type CustomerBlock struct {
	FirstName         string         `json:"firstName"`
	LastName          string         `json:"lastName"`
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	Phone             string         `json:"phone"`
	IdentityDocument  *IdentityBlock `json:"identityDocument"`
	DateOfBirth       string         `json:"dateOfBirth"`
	Gender            string         `json:"gender"`
	Address           *AddressBlock  `json:"address"`
	EmergencyContacts []ContactBlock `json:"emergencyContacts"`
}

// IdentityBlock is the passport or national ID presented by the customer.
type IdentityBlock struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// AddressBlock is the customer's postal address.
type AddressBlock struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ContactBlock is one emergency contact.
type ContactBlock struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// RentalBlock describes the rental period and the number of devices.
type RentalBlock struct {
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	Duration          int    `json:"duration"`
	DeviceCount       int    `json:"deviceCount"`
	TravelDestination string `json:"travelDestination"`
}

// PaymentBlock carries the checkout payment. Total becomes the order's
// estimated amount.
type PaymentBlock struct {
	Method   string           `json:"method"`
	Status   string           `json:"status"`
	Total    *decimal.Decimal `json:"total"`
	Currency string           `json:"currency"`
	PaidDate string           `json:"paidDate"`
}

// DecodePayload parses a raw delivery body. The body must be a JSON object.
func DecodePayload(raw []byte) (*Payload, error) {
	if jx.DecodeBytes(raw).Next() != jx.Object {
		return nil, errors.Wrap(ErrMalformedPayload, "body is not a JSON object")
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errors.Wrapf(ErrMalformedPayload, "decode: %s", err)
	}
	return &p, nil
}

// Transform maps a decoded payload into an order. raw is kept on the order
// as the audit copy of the delivery.
func Transform(p *Payload, raw []byte) (*order.Order, error) {
	if p.Order == nil {
		return nil, missing("order")
	}
	id := strings.TrimSpace(p.Order.OrderID)
	if id == "" {
		id = strings.TrimSpace(p.Order.ID)
	}
	if id == "" {
		return nil, missing("order.orderId")
	}
	if p.Order.OrderDate == "" {
		return nil, missing("order.orderDate")
	}
	createdAt, err := parseDate(p.Order.OrderDate)
	if err != nil {
		return nil, invalid("order.orderDate", err)
	}
	if p.Customer == nil {
		return nil, missing("customer")
	}
	if p.Rental == nil {
		return nil, missing("rental")
	}
	if p.Payment == nil {
		return nil, missing("payment")
	}
	if p.Payment.Total == nil {
		return nil, missing("payment.total")
	}

	metadata, err := normalizeMetadata(p.Metadata)
	if err != nil {
		return nil, err
	}
	rental, err := transformRental(p.Rental, *p.Payment.Total)
	if err != nil {
		return nil, err
	}
	payment, err := transformPayment(p.Payment)
	if err != nil {
		return nil, err
	}

	return &order.Order{
		ID:          id,
		OrderNumber: p.Order.OrderNumber,
		Source:      order.SourceWebsite,
		Status:      order.StatusNew,
		CreatedAt:   createdAt,
		Customer:    transformCustomer(p.Customer),
		Rental:      rental,
		Payment:     payment,
		Metadata:    metadata,
		RawPayload:  append(json.RawMessage(nil), raw...),
	}, nil
}

func transformCustomer(c *CustomerBlock) order.Customer {
	name := joinName(c.FirstName, c.LastName)
	if name == "" {
		name = strings.TrimSpace(c.Name)
	}
	out := order.Customer{
		Name:              name,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Phone:             c.Phone,
		DateOfBirth:       c.DateOfBirth,
		Gender:            c.Gender,
		EmergencyContacts: make([]order.EmergencyContact, 0, len(c.EmergencyContacts)),
	}
	if c.IdentityDocument != nil {
		out.Identity = order.IdentityDocument{
			Type:   c.IdentityDocument.Type,
			Number: c.IdentityDocument.Number,
		}
	}
	if c.Address != nil {
		out.Address = order.Address{
			Street:     c.Address.Street,
			City:       c.Address.City,
			State:      c.Address.State,
			PostalCode: c.Address.PostalCode,
			Country:    c.Address.Country,
		}
	}
	for _, ec := range c.EmergencyContacts {
		out.EmergencyContacts = append(out.EmergencyContacts, order.EmergencyContact{
			Name:         joinName(ec.FirstName, ec.LastName),
			Relationship: ec.Relationship,
			Phone:        ec.Phone,
			Email:        ec.Email,
		})
	}
	return out
}

// transformRental takes the estimated amount from the payment total; the
// website does not send a separate rental amount.
func transformRental(r *RentalBlock, total decimal.Decimal) (order.Rental, error) {
	out := order.Rental{
		Duration:        r.Duration,
		DeviceCount:     r.DeviceCount,
		Destination:     r.TravelDestination,
		EstimatedAmount: total,
	}
	var err error
	if r.StartDate != "" {
		if out.StartDate, err = parseDate(r.StartDate); err != nil {
			return order.Rental{}, invalid("rental.startDate", err)
		}
	}
	if r.EndDate != "" {
		if out.EndDate, err = parseDate(r.EndDate); err != nil {
			return order.Rental{}, invalid("rental.endDate", err)
		}
	}
	return out, nil
}

func transformPayment(p *PaymentBlock) (order.Payment, error) {
	out := order.Payment{
		Method:   p.Method,
		Status:   p.Status,
		Amount:   *p.Total,
		Currency: p.Currency,
	}
	if p.PaidDate != "" {
		paid, err := parseDate(p.PaidDate)
		if err != nil {
			return order.Payment{}, invalid("payment.paidDate", err)
		}
		out.PaidDate = &paid
	}
	return out, nil
}

func normalizeMetadata(raw json.RawMessage) (json.RawMessage, error) {
	switch jx.DecodeBytes(raw).Next() {
	case jx.Invalid, jx.Null:
		return json.RawMessage(`{}`), nil
	case jx.Object:
		return append(json.RawMessage(nil), raw...), nil
	default:
		return nil, errors.Wrap(ErrMalformedPayload, "metadata is not an object")
	}
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func missing(field string) error {
	return errors.Wrapf(ErrMalformedPayload, "missing %s", field)
}

func invalid(field string, err error) error {
	return errors.Wrapf(ErrMalformedPayload, "invalid %s: %s", field, err)
}
