// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

// Ref: #/components/schemas/Address
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// GetStreet returns the value of Street.
func (s *Address) GetStreet() string {
	return s.Street
}

// GetCity returns the value of City.
func (s *Address) GetCity() string {
	return s.City
}

// GetState returns the value of State.
func (s *Address) GetState() string {
	return s.State
}

// GetPostalCode returns the value of PostalCode.
func (s *Address) GetPostalCode() string {
	return s.PostalCode
}

// GetCountry returns the value of Country.
func (s *Address) GetCountry() string {
	return s.Country
}

// SetStreet sets the value of Street.
func (s *Address) SetStreet(val string) {
	s.Street = val
}

// SetCity sets the value of City.
func (s *Address) SetCity(val string) {
	s.City = val
}

// SetState sets the value of State.
func (s *Address) SetState(val string) {
	s.State = val
}

// SetPostalCode sets the value of PostalCode.
func (s *Address) SetPostalCode(val string) {
	s.PostalCode = val
}

// SetCountry sets the value of Country.
func (s *Address) SetCountry(val string) {
	s.Country = val
}

// Ref: #/components/schemas/CancelOrderRequest
type CancelOrderRequest struct {
	Reason OptString `json:"reason"`
}

// GetReason returns the value of Reason.
func (s *CancelOrderRequest) GetReason() OptString {
	return s.Reason
}

// SetReason sets the value of Reason.
func (s *CancelOrderRequest) SetReason(val OptString) {
	s.Reason = val
}

// Ref: #/components/schemas/Customer
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

// GetName returns the value of Name.
func (s *Customer) GetName() string {
	return s.Name
}

// GetFirstName returns the value of FirstName.
func (s *Customer) GetFirstName() string {
	return s.FirstName
}

// GetLastName returns the value of LastName.
func (s *Customer) GetLastName() string {
	return s.LastName
}

// GetEmail returns the value of Email.
func (s *Customer) GetEmail() string {
	return s.Email
}

// GetPhone returns the value of Phone.
func (s *Customer) GetPhone() string {
	return s.Phone
}

// GetIdentity returns the value of Identity.
func (s *Customer) GetIdentity() IdentityDocument {
	return s.Identity
}

// GetDateOfBirth returns the value of DateOfBirth.
func (s *Customer) GetDateOfBirth() string {
	return s.DateOfBirth
}

// GetGender returns the value of Gender.
func (s *Customer) GetGender() string {
	return s.Gender
}

// GetAddress returns the value of Address.
func (s *Customer) GetAddress() Address {
	return s.Address
}

// GetEmergencyContacts returns the value of EmergencyContacts.
func (s *Customer) GetEmergencyContacts() []EmergencyContact {
	return s.EmergencyContacts
}

// SetName sets the value of Name.
func (s *Customer) SetName(val string) {
	s.Name = val
}

// SetFirstName sets the value of FirstName.
func (s *Customer) SetFirstName(val string) {
	s.FirstName = val
}

// SetLastName sets the value of LastName.
func (s *Customer) SetLastName(val string) {
	s.LastName = val
}

// SetEmail sets the value of Email.
func (s *Customer) SetEmail(val string) {
	s.Email = val
}

// SetPhone sets the value of Phone.
func (s *Customer) SetPhone(val string) {
	s.Phone = val
}

// SetIdentity sets the value of Identity.
func (s *Customer) SetIdentity(val IdentityDocument) {
	s.Identity = val
}

// SetDateOfBirth sets the value of DateOfBirth.
func (s *Customer) SetDateOfBirth(val string) {
	s.DateOfBirth = val
}

// SetGender sets the value of Gender.
func (s *Customer) SetGender(val string) {
	s.Gender = val
}

// SetAddress sets the value of Address.
func (s *Customer) SetAddress(val Address) {
	s.Address = val
}

// SetEmergencyContacts sets the value of EmergencyContacts.
func (s *Customer) SetEmergencyContacts(val []EmergencyContact) {
	s.EmergencyContacts = val
}

// Ref: #/components/schemas/EmergencyContact
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// GetName returns the value of Name.
func (s *EmergencyContact) GetName() string {
	return s.Name
}

// GetRelationship returns the value of Relationship.
func (s *EmergencyContact) GetRelationship() string {
	return s.Relationship
}

// GetPhone returns the value of Phone.
func (s *EmergencyContact) GetPhone() string {
	return s.Phone
}

// GetEmail returns the value of Email.
func (s *EmergencyContact) GetEmail() string {
	return s.Email
}

// SetName sets the value of Name.
func (s *EmergencyContact) SetName(val string) {
	s.Name = val
}

// SetRelationship sets the value of Relationship.
func (s *EmergencyContact) SetRelationship(val string) {
	s.Relationship = val
}

// SetPhone sets the value of Phone.
func (s *EmergencyContact) SetPhone(val string) {
	s.Phone = val
}

// SetEmail sets the value of Email.
func (s *EmergencyContact) SetEmail(val string) {
	s.Email = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetSuccess returns the value of Success.
func (s *Error) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// SetSuccess sets the value of Success.
func (s *Error) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// Ref: #/components/schemas/IdentityDocument
type IdentityDocument struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// GetType returns the value of Type.
func (s *IdentityDocument) GetType() string {
	return s.Type
}

// GetNumber returns the value of Number.
func (s *IdentityDocument) GetNumber() string {
	return s.Number
}

// SetType sets the value of Type.
func (s *IdentityDocument) SetType(val string) {
	s.Type = val
}

// SetNumber sets the value of Number.
func (s *IdentityDocument) SetNumber(val string) {
	s.Number = val
}

// NewNilDateTime returns new NilDateTime with value set to v.
func NewNilDateTime(v time.Time) NilDateTime {
	return NilDateTime{
		Value: v,
	}
}

// NilDateTime is nullable time.Time.
type NilDateTime struct {
	Value time.Time
	Null  bool
}

// SetTo sets value to v.
func (o *NilDateTime) SetTo(v time.Time) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilDateTime) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilDateTime) SetToNull() {
	o.Null = true
	var v time.Time
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilDateTime) Get() (v time.Time, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewNilString returns new NilString with value set to v.
func NewNilString(v string) NilString {
	return NilString{
		Value: v,
	}
}

// NilString is nullable string.
type NilString struct {
	Value string
	Null  bool
}

// SetTo sets value to v.
func (o *NilString) SetTo(v string) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilString) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilString) SetToNull() {
	o.Null = true
	var v string
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilString) Get() (v string, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

type OperatorToken struct {
	Token string
	Roles []string
}

// GetToken returns the value of Token.
func (s *OperatorToken) GetToken() string {
	return s.Token
}

// GetRoles returns the value of Roles.
func (s *OperatorToken) GetRoles() []string {
	return s.Roles
}

// SetToken sets the value of Token.
func (s *OperatorToken) SetToken(val string) {
	s.Token = val
}

// SetRoles sets the value of Roles.
func (s *OperatorToken) SetRoles(val []string) {
	s.Roles = val
}

// NewOptCancelOrderRequest returns new OptCancelOrderRequest with value set to v.
func NewOptCancelOrderRequest(v CancelOrderRequest) OptCancelOrderRequest {
	return OptCancelOrderRequest{
		Value: v,
		Set:   true,
	}
}

// OptCancelOrderRequest is optional CancelOrderRequest.
type OptCancelOrderRequest struct {
	Value CancelOrderRequest
	Set   bool
}

// IsSet returns true if OptCancelOrderRequest was set.
func (o OptCancelOrderRequest) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptCancelOrderRequest) Reset() {
	var v CancelOrderRequest
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptCancelOrderRequest) SetTo(v CancelOrderRequest) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptCancelOrderRequest) Get() (v CancelOrderRequest, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptCancelOrderRequest) Or(d CancelOrderRequest) CancelOrderRequest {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Order
type Order struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Source      string      `json:"source"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	ReceivedAt  time.Time   `json:"receivedAt"`
	Customer    Customer    `json:"customer"`
	Rental      Rental      `json:"rental"`
	Payment     Payment     `json:"payment"`
	// Passthrough object from the sender.
	Metadata jx.Raw `json:"metadata"`
	// Delivery body exactly as received.
	RawPayload    jx.Raw      `json:"rawPayload"`
	RentalId      NilString   `json:"rentalId"`
	AssignedImeis []string    `json:"assignedImeis"`
	UpdatedAt     NilDateTime `json:"updatedAt"`
	CancelReason  NilString   `json:"cancelReason"`
	CancelledAt   NilDateTime `json:"cancelledAt"`
}

// GetID returns the value of ID.
func (s *Order) GetID() string {
	return s.ID
}

// GetOrderNumber returns the value of OrderNumber.
func (s *Order) GetOrderNumber() string {
	return s.OrderNumber
}

// GetSource returns the value of Source.
func (s *Order) GetSource() string {
	return s.Source
}

// GetStatus returns the value of Status.
func (s *Order) GetStatus() OrderStatus {
	return s.Status
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Order) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetReceivedAt returns the value of ReceivedAt.
func (s *Order) GetReceivedAt() time.Time {
	return s.ReceivedAt
}

// GetCustomer returns the value of Customer.
func (s *Order) GetCustomer() Customer {
	return s.Customer
}

// GetRental returns the value of Rental.
func (s *Order) GetRental() Rental {
	return s.Rental
}

// GetPayment returns the value of Payment.
func (s *Order) GetPayment() Payment {
	return s.Payment
}

// GetMetadata returns the value of Metadata.
func (s *Order) GetMetadata() jx.Raw {
	return s.Metadata
}

// GetRawPayload returns the value of RawPayload.
func (s *Order) GetRawPayload() jx.Raw {
	return s.RawPayload
}

// GetRentalId returns the value of RentalId.
func (s *Order) GetRentalId() NilString {
	return s.RentalId
}

// GetAssignedImeis returns the value of AssignedImeis.
func (s *Order) GetAssignedImeis() []string {
	return s.AssignedImeis
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Order) GetUpdatedAt() NilDateTime {
	return s.UpdatedAt
}

// GetCancelReason returns the value of CancelReason.
func (s *Order) GetCancelReason() NilString {
	return s.CancelReason
}

// GetCancelledAt returns the value of CancelledAt.
func (s *Order) GetCancelledAt() NilDateTime {
	return s.CancelledAt
}

// SetID sets the value of ID.
func (s *Order) SetID(val string) {
	s.ID = val
}

// SetOrderNumber sets the value of OrderNumber.
func (s *Order) SetOrderNumber(val string) {
	s.OrderNumber = val
}

// SetSource sets the value of Source.
func (s *Order) SetSource(val string) {
	s.Source = val
}

// SetStatus sets the value of Status.
func (s *Order) SetStatus(val OrderStatus) {
	s.Status = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Order) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetReceivedAt sets the value of ReceivedAt.
func (s *Order) SetReceivedAt(val time.Time) {
	s.ReceivedAt = val
}

// SetCustomer sets the value of Customer.
func (s *Order) SetCustomer(val Customer) {
	s.Customer = val
}

// SetRental sets the value of Rental.
func (s *Order) SetRental(val Rental) {
	s.Rental = val
}

// SetPayment sets the value of Payment.
func (s *Order) SetPayment(val Payment) {
	s.Payment = val
}

// SetMetadata sets the value of Metadata.
func (s *Order) SetMetadata(val jx.Raw) {
	s.Metadata = val
}

// SetRawPayload sets the value of RawPayload.
func (s *Order) SetRawPayload(val jx.Raw) {
	s.RawPayload = val
}

// SetRentalId sets the value of RentalId.
func (s *Order) SetRentalId(val NilString) {
	s.RentalId = val
}

// SetAssignedImeis sets the value of AssignedImeis.
func (s *Order) SetAssignedImeis(val []string) {
	s.AssignedImeis = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Order) SetUpdatedAt(val NilDateTime) {
	s.UpdatedAt = val
}

// SetCancelReason sets the value of CancelReason.
func (s *Order) SetCancelReason(val NilString) {
	s.CancelReason = val
}

// SetCancelledAt sets the value of CancelledAt.
func (s *Order) SetCancelledAt(val NilDateTime) {
	s.CancelledAt = val
}

// Ref: #/components/schemas/OrderStats
type OrderStats struct {
	Total       int          `json:"total"`
	ByStatus    StatusCounts `json:"byStatus"`
	Last24Hours int          `json:"last24Hours"`
	Last7Days   int          `json:"last7Days"`
}

// GetTotal returns the value of Total.
func (s *OrderStats) GetTotal() int {
	return s.Total
}

// GetByStatus returns the value of ByStatus.
func (s *OrderStats) GetByStatus() StatusCounts {
	return s.ByStatus
}

// GetLast24Hours returns the value of Last24Hours.
func (s *OrderStats) GetLast24Hours() int {
	return s.Last24Hours
}

// GetLast7Days returns the value of Last7Days.
func (s *OrderStats) GetLast7Days() int {
	return s.Last7Days
}

// SetTotal sets the value of Total.
func (s *OrderStats) SetTotal(val int) {
	s.Total = val
}

// SetByStatus sets the value of ByStatus.
func (s *OrderStats) SetByStatus(val StatusCounts) {
	s.ByStatus = val
}

// SetLast24Hours sets the value of Last24Hours.
func (s *OrderStats) SetLast24Hours(val int) {
	s.Last24Hours = val
}

// SetLast7Days sets the value of Last7Days.
func (s *OrderStats) SetLast7Days(val int) {
	s.Last7Days = val
}

// Ref: #/components/schemas/OrderStatus
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// AllValues returns all OrderStatus values.
func (OrderStatus) AllValues() []OrderStatus {
	return []OrderStatus{
		OrderStatusNew,
		OrderStatusProcessing,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s OrderStatus) MarshalText() ([]byte, error) {
	switch s {
	case OrderStatusNew:
		return []byte(s), nil
	case OrderStatusProcessing:
		return []byte(s), nil
	case OrderStatusCompleted:
		return []byte(s), nil
	case OrderStatusCancelled:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OrderStatus) UnmarshalText(data []byte) error {
	switch OrderStatus(data) {
	case OrderStatusNew:
		*s = OrderStatusNew
		return nil
	case OrderStatusProcessing:
		*s = OrderStatusProcessing
		return nil
	case OrderStatusCompleted:
		*s = OrderStatusCompleted
		return nil
	case OrderStatusCancelled:
		*s = OrderStatusCancelled
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/Payment
type Payment struct {
	Method   string      `json:"method"`
	Status   string      `json:"status"`
	Amount   float64     `json:"amount"`
	Currency string      `json:"currency"`
	PaidDate NilDateTime `json:"paidDate"`
}

// GetMethod returns the value of Method.
func (s *Payment) GetMethod() string {
	return s.Method
}

// GetStatus returns the value of Status.
func (s *Payment) GetStatus() string {
	return s.Status
}

// GetAmount returns the value of Amount.
func (s *Payment) GetAmount() float64 {
	return s.Amount
}

// GetCurrency returns the value of Currency.
func (s *Payment) GetCurrency() string {
	return s.Currency
}

// GetPaidDate returns the value of PaidDate.
func (s *Payment) GetPaidDate() NilDateTime {
	return s.PaidDate
}

// SetMethod sets the value of Method.
func (s *Payment) SetMethod(val string) {
	s.Method = val
}

// SetStatus sets the value of Status.
func (s *Payment) SetStatus(val string) {
	s.Status = val
}

// SetAmount sets the value of Amount.
func (s *Payment) SetAmount(val float64) {
	s.Amount = val
}

// SetCurrency sets the value of Currency.
func (s *Payment) SetCurrency(val string) {
	s.Currency = val
}

// SetPaidDate sets the value of PaidDate.
func (s *Payment) SetPaidDate(val NilDateTime) {
	s.PaidDate = val
}

// Ref: #/components/schemas/Rental
type Rental struct {
	StartDate       NilDateTime `json:"startDate"`
	EndDate         NilDateTime `json:"endDate"`
	Duration        int         `json:"duration"`
	DeviceCount     int         `json:"deviceCount"`
	Destination     string      `json:"destination"`
	EstimatedAmount float64     `json:"estimatedAmount"`
}

// GetStartDate returns the value of StartDate.
func (s *Rental) GetStartDate() NilDateTime {
	return s.StartDate
}

// GetEndDate returns the value of EndDate.
func (s *Rental) GetEndDate() NilDateTime {
	return s.EndDate
}

// GetDuration returns the value of Duration.
func (s *Rental) GetDuration() int {
	return s.Duration
}

// GetDeviceCount returns the value of DeviceCount.
func (s *Rental) GetDeviceCount() int {
	return s.DeviceCount
}

// GetDestination returns the value of Destination.
func (s *Rental) GetDestination() string {
	return s.Destination
}

// GetEstimatedAmount returns the value of EstimatedAmount.
func (s *Rental) GetEstimatedAmount() float64 {
	return s.EstimatedAmount
}

// SetStartDate sets the value of StartDate.
func (s *Rental) SetStartDate(val NilDateTime) {
	s.StartDate = val
}

// SetEndDate sets the value of EndDate.
func (s *Rental) SetEndDate(val NilDateTime) {
	s.EndDate = val
}

// SetDuration sets the value of Duration.
func (s *Rental) SetDuration(val int) {
	s.Duration = val
}

// SetDeviceCount sets the value of DeviceCount.
func (s *Rental) SetDeviceCount(val int) {
	s.DeviceCount = val
}

// SetDestination sets the value of Destination.
func (s *Rental) SetDestination(val string) {
	s.Destination = val
}

// SetEstimatedAmount sets the value of EstimatedAmount.
func (s *Rental) SetEstimatedAmount(val float64) {
	s.EstimatedAmount = val
}

// Ref: #/components/schemas/StatusCounts
type StatusCounts struct {
	New        int `json:"new"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

// GetNew returns the value of New.
func (s *StatusCounts) GetNew() int {
	return s.New
}

// GetProcessing returns the value of Processing.
func (s *StatusCounts) GetProcessing() int {
	return s.Processing
}

// GetCompleted returns the value of Completed.
func (s *StatusCounts) GetCompleted() int {
	return s.Completed
}

// GetCancelled returns the value of Cancelled.
func (s *StatusCounts) GetCancelled() int {
	return s.Cancelled
}

// SetNew sets the value of New.
func (s *StatusCounts) SetNew(val int) {
	s.New = val
}

// SetProcessing sets the value of Processing.
func (s *StatusCounts) SetProcessing(val int) {
	s.Processing = val
}

// SetCompleted sets the value of Completed.
func (s *StatusCounts) SetCompleted(val int) {
	s.Completed = val
}

// SetCancelled sets the value of Cancelled.
func (s *StatusCounts) SetCancelled(val int) {
	s.Cancelled = val
}

// Ref: #/components/schemas/UpdateOrderRequest
type UpdateOrderRequest struct {
	Status   string    `json:"status"`
	RentalId OptString `json:"rentalId"`
	Imeis    []string  `json:"imeis"`
}

// GetStatus returns the value of Status.
func (s *UpdateOrderRequest) GetStatus() string {
	return s.Status
}

// GetRentalId returns the value of RentalId.
func (s *UpdateOrderRequest) GetRentalId() OptString {
	return s.RentalId
}

// GetImeis returns the value of Imeis.
func (s *UpdateOrderRequest) GetImeis() []string {
	return s.Imeis
}

// SetStatus sets the value of Status.
func (s *UpdateOrderRequest) SetStatus(val string) {
	s.Status = val
}

// SetRentalId sets the value of RentalId.
func (s *UpdateOrderRequest) SetRentalId(val OptString) {
	s.RentalId = val
}

// SetImeis sets the value of Imeis.
func (s *UpdateOrderRequest) SetImeis(val []string) {
	s.Imeis = val
}

// Ref: #/components/schemas/WebhookAccepted
type WebhookAccepted struct {
	Success bool   `json:"success"`
	OrderId string `json:"orderId"`
}

// GetSuccess returns the value of Success.
func (s *WebhookAccepted) GetSuccess() bool {
	return s.Success
}

// GetOrderId returns the value of OrderId.
func (s *WebhookAccepted) GetOrderId() string {
	return s.OrderId
}

// SetSuccess sets the value of Success.
func (s *WebhookAccepted) SetSuccess(val bool) {
	s.Success = val
}

// SetOrderId sets the value of OrderId.
func (s *WebhookAccepted) SetOrderId(val string) {
	s.OrderId = val
}

// Order-created body sent by the website. The receiver maps it from the
// raw signed bytes, so fields are not declared here.
// Ref: #/components/schemas/WebhookPayload
type WebhookPayload struct{}

type WebhookSignature struct {
	APIKey string
	Roles  []string
}

// GetAPIKey returns the value of APIKey.
func (s *WebhookSignature) GetAPIKey() string {
	return s.APIKey
}

// GetRoles returns the value of Roles.
func (s *WebhookSignature) GetRoles() []string {
	return s.Roles
}

// SetAPIKey sets the value of APIKey.
func (s *WebhookSignature) SetAPIKey(val string) {
	s.APIKey = val
}

// SetRoles sets the value of Roles.
func (s *WebhookSignature) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/WebhookTestResult
type WebhookTestResult struct {
	Success          bool      `json:"success"`
	Message          string    `json:"message"`
	SecretConfigured bool      `json:"secretConfigured"`
	Timestamp        time.Time `json:"timestamp"`
}

// GetSuccess returns the value of Success.
func (s *WebhookTestResult) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *WebhookTestResult) GetMessage() string {
	return s.Message
}

// GetSecretConfigured returns the value of SecretConfigured.
func (s *WebhookTestResult) GetSecretConfigured() bool {
	return s.SecretConfigured
}

// GetTimestamp returns the value of Timestamp.
func (s *WebhookTestResult) GetTimestamp() time.Time {
	return s.Timestamp
}

// SetSuccess sets the value of Success.
func (s *WebhookTestResult) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *WebhookTestResult) SetMessage(val string) {
	s.Message = val
}

// SetSecretConfigured sets the value of SecretConfigured.
func (s *WebhookTestResult) SetSecretConfigured(val bool) {
	s.SecretConfigured = val
}

// SetTimestamp sets the value of Timestamp.
func (s *WebhookTestResult) SetTimestamp(val time.Time) {
	s.Timestamp = val
}
