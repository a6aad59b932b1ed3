package webhook

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/satdesk-webhooks/internal/domain/order"
)

const fullPayload = `{
  "order": {"orderId": "W-100", "orderNumber": "1001", "orderDate": "2026-03-09T08:30:00Z"},
  "customer": {
    "firstName": "Ana", "lastName": "Silva",
    "email": "ana@example.com", "phone": "+351900000000",
    "identityDocument": {"type": "passport", "number": "P1234567"},
    "dateOfBirth": "1990-05-01", "gender": "female",
    "address": {"street": "Rua 1", "city": "Lisboa", "state": "", "postalCode": "1000-001", "country": "PT"},
    "emergencyContacts": [
      {"firstName": "Rui", "lastName": "Silva", "relationship": "brother", "phone": "+351911111111", "email": "rui@example.com"}
    ]
  },
  "rental": {"startDate": "2026-04-01", "endDate": "2026-04-15", "duration": 14, "deviceCount": 2, "travelDestination": "Patagonia"},
  "payment": {"method": "card", "status": "paid", "total": 250, "currency": "EUR", "paidDate": "2026-03-09T08:31:00Z"},
  "metadata": {"utm_source": "newsletter"}
}`

func decodeAndTransform(t *testing.T, raw string) (*order.Order, error) {
	t.Helper()
	p, err := DecodePayload([]byte(raw))
	if err != nil {
		return nil, err
	}
	return Transform(p, []byte(raw))
}

func TestTransform_FullPayload(t *testing.T) {
	o, err := decodeAndTransform(t, fullPayload)
	require.NoError(t, err)

	assert.Equal(t, "W-100", o.ID)
	assert.Equal(t, "1001", o.OrderNumber)
	assert.Equal(t, order.SourceWebsite, o.Source)
	assert.Equal(t, order.StatusNew, o.Status)
	assert.Equal(t, time.Date(2026, 3, 9, 8, 30, 0, 0, time.UTC), o.CreatedAt)

	assert.Equal(t, "Ana Silva", o.Customer.Name)
	assert.Equal(t, "passport", o.Customer.Identity.Type)
	assert.Equal(t, "Lisboa", o.Customer.Address.City)
	require.Len(t, o.Customer.EmergencyContacts, 1)
	assert.Equal(t, order.EmergencyContact{
		Name:         "Rui Silva",
		Relationship: "brother",
		Phone:        "+351911111111",
		Email:        "rui@example.com",
	}, o.Customer.EmergencyContacts[0])

	assert.Equal(t, 14, o.Rental.Duration)
	assert.Equal(t, 2, o.Rental.DeviceCount)
	assert.Equal(t, "Patagonia", o.Rental.Destination)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), o.Rental.StartDate)
	assert.True(t, decimal.NewFromInt(250).Equal(o.Rental.EstimatedAmount))

	assert.True(t, decimal.NewFromInt(250).Equal(o.Payment.Amount))
	assert.Equal(t, "EUR", o.Payment.Currency)
	require.NotNil(t, o.Payment.PaidDate)

	assert.JSONEq(t, `{"utm_source":"newsletter"}`, string(o.Metadata))
	assert.Equal(t, fullPayload, string(o.RawPayload))
}

func TestTransform_EstimatedAmountFromPaymentTotal(t *testing.T) {
	raw := `{
	  "order": {"orderId": "W-1", "orderDate": "2026-03-09"},
	  "customer": {},
	  "rental": {"estimatedAmount": 999},
	  "payment": {"total": "123.45"}
	}`
	o, err := decodeAndTransform(t, raw)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("123.45").Equal(o.Rental.EstimatedAmount))
}

func TestTransform_Defaults(t *testing.T) {
	raw := `{
	  "order": {"id": "W-2", "orderDate": "2026-03-09"},
	  "customer": {"name": "Solo Traveller"},
	  "rental": {},
	  "payment": {"total": 0},
	  "metadata": null
	}`
	o, err := decodeAndTransform(t, raw)
	require.NoError(t, err)

	assert.Equal(t, "W-2", o.ID)
	assert.Equal(t, "Solo Traveller", o.Customer.Name)
	assert.NotNil(t, o.Customer.EmergencyContacts)
	assert.Empty(t, o.Customer.EmergencyContacts)
	assert.JSONEq(t, `{}`, string(o.Metadata))
	assert.True(t, o.Rental.StartDate.IsZero())
	assert.Nil(t, o.Payment.PaidDate)
}

func TestTransform_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "not an object", raw: `[1,2]`, want: "not a JSON object"},
		{name: "invalid json", raw: `{"order":`, want: "decode"},
		{name: "missing order", raw: `{"customer":{}}`, want: "missing order"},
		{
			name: "missing id",
			raw:  `{"order":{"orderDate":"2026-03-09"},"customer":{},"rental":{},"payment":{"total":1}}`,
			want: "missing order.orderId",
		},
		{
			name: "missing order date",
			raw:  `{"order":{"orderId":"W"},"customer":{},"rental":{},"payment":{"total":1}}`,
			want: "missing order.orderDate",
		},
		{
			name: "bad order date",
			raw:  `{"order":{"orderId":"W","orderDate":"09/03/2026"},"customer":{},"rental":{},"payment":{"total":1}}`,
			want: "invalid order.orderDate",
		},
		{
			name: "missing customer",
			raw:  `{"order":{"orderId":"W","orderDate":"2026-03-09"},"rental":{},"payment":{"total":1}}`,
			want: "missing customer",
		},
		{
			name: "missing rental",
			raw:  `{"order":{"orderId":"W","orderDate":"2026-03-09"},"customer":{},"payment":{"total":1}}`,
			want: "missing rental",
		},
		{
			name: "missing payment total",
			raw:  `{"order":{"orderId":"W","orderDate":"2026-03-09"},"customer":{},"rental":{},"payment":{}}`,
			want: "missing payment.total",
		},
		{
			name: "metadata not object",
			raw:  `{"order":{"orderId":"W","orderDate":"2026-03-09"},"customer":{},"rental":{},"payment":{"total":1},"metadata":[1]}`,
			want: "metadata is not an object",
		},
		{
			name: "bad rental date",
			raw:  `{"order":{"orderId":"W","orderDate":"2026-03-09"},"customer":{},"rental":{"startDate":"soon"},"payment":{"total":1}}`,
			want: "invalid rental.startDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeAndTransform(t, tt.raw)
			require.ErrorIs(t, err, ErrMalformedPayload)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTransform_RawPayloadIsCopied(t *testing.T) {
	raw := []byte(fullPayload)
	p, err := DecodePayload(raw)
	require.NoError(t, err)
	o, err := Transform(p, raw)
	require.NoError(t, err)

	raw[0] = 'X'
	assert.True(t, json.Valid(o.RawPayload))
}
