// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	CancelOrderOperation  OperationName = "CancelOrder"
	GetOrderOperation     OperationName = "GetOrder"
	GetStatsOperation     OperationName = "GetStats"
	ListOrdersOperation   OperationName = "ListOrders"
	ReceiveOrderOperation OperationName = "ReceiveOrder"
	TestWebhookOperation  OperationName = "TestWebhook"
	UpdateOrderOperation  OperationName = "UpdateOrder"
)
