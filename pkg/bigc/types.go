package bigc

import (
	"context"
	"encoding/json"
	"iter"
)

// Object is a decoded JSON object as returned by the platform.
type Object = map[string]any

// RawAPI is one API generation of the platform. Paths are relative to the
// store's versioned root, e.g. "/catalog/products".
type RawAPI interface {
	// Request performs one logical call and returns the decoded body, or nil
	// when the platform answered with an empty body.
	Request(ctx context.Context, method, path string, body any, opts *RequestOptions) (json.RawMessage, error)
	Get(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any, opts *RequestOptions) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any, opts *RequestOptions) (json.RawMessage, error)
	Delete(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error)
	// GetMany lazily walks every page of a collection. Pages are fetched one
	// at a time, only as the sequence is consumed.
	GetMany(ctx context.Context, path string, opts *ListOptions) iter.Seq2[json.RawMessage, error]
}

// Envelope is the body wrapper used by the v3 API.
type Envelope struct {
	Data json.RawMessage `json:"data"`
	Meta EnvelopeMeta    `json:"meta"`
}

// EnvelopeMeta holds the pagination metadata of a v3 response.
type EnvelopeMeta struct {
	Pagination       *Pagination       `json:"pagination,omitempty"`
	CursorPagination *CursorPagination `json:"cursor_pagination,omitempty"`
}

// Pagination is page-number pagination metadata.
type Pagination struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// CursorPagination is cursor pagination metadata.
type CursorPagination struct {
	Count       int         `json:"count"`
	PerPage     int         `json:"per_page"`
	StartCursor string      `json:"start_cursor"`
	EndCursor   string      `json:"end_cursor"`
	Links       CursorLinks `json:"links"`
}

// CursorLinks holds the neighbouring page links of a cursor page.
type CursorLinks struct {
	Previous string `json:"previous,omitempty"`
	Current  string `json:"current,omitempty"`
	Next     string `json:"next,omitempty"`
}

// OrderStatus is the numeric id of an order status.
type OrderStatus int

// Order statuses.
const (
	OrderStatusIncomplete OrderStatus = iota
	OrderStatusPending
	OrderStatusShipped
	OrderStatusPartiallyShipped
	OrderStatusRefunded
	OrderStatusCancelled
	OrderStatusDeclined
	OrderStatusAwaitingPayment
	OrderStatusAwaitingPickup
	OrderStatusAwaitingShipment
	OrderStatusCompleted
	OrderStatusAwaitingFulfillment
	OrderStatusManualVerificationRequired
	OrderStatusDisputed
	OrderStatusPartiallyRefunded
)

var orderStatusNames = [...]string{
	"Incomplete",
	"Pending",
	"Shipped",
	"Partially Shipped",
	"Refunded",
	"Cancelled",
	"Declined",
	"Awaiting Payment",
	"Awaiting Pickup",
	"Awaiting Shipment",
	"Completed",
	"Awaiting Fulfillment",
	"Manual Verification Required",
	"Disputed",
	"Partially Refunded",
}

// String returns the status name as shown in the control panel.
func (s OrderStatus) String() string {
	if s < 0 || int(s) >= len(orderStatusNames) {
		return "Unknown"
	}

	return orderStatusNames[s]
}

// ShippingMethod is the name of a built-in shipping method.
type ShippingMethod string

// Shipping methods.
const (
	ShippingMethodStandard       ShippingMethod = "Standard"
	ShippingMethodShipByWeight   ShippingMethod = "Ship By Weight"
	ShippingMethodCustomShipment ShippingMethod = "Custom Shipment"
)

// ShippingProvider is the identifier of a shipping provider.
type ShippingProvider string

// Shipping providers.
const (
	ShippingProviderAusPost    ShippingProvider = "auspost"
	ShippingProviderCanadaPost ShippingProvider = "canadapost"
	ShippingProviderEndicia    ShippingProvider = "endicia"
	ShippingProviderUSPS       ShippingProvider = "usps"
	ShippingProviderFedEx      ShippingProvider = "fedex"
	ShippingProviderUPS        ShippingProvider = "ups"
	ShippingProviderUPSReady   ShippingProvider = "upsready"
	ShippingProviderUPSOnline  ShippingProvider = "upsonline"
	ShippingProviderShipperHQ  ShippingProvider = "shipperhq"
)
