package client

import (
	"context"
	"iter"
	"net/http"
	"strconv"

	"github.com/fivetwenty-io/bigc/internal/constants"
	"github.com/fivetwenty-io/bigc/pkg/bigc"
)

// OrdersClient implements bigc.OrdersClient. Orders and their sub-resources
// live on the v2 API; payment actions live on v3.
type OrdersClient struct {
	orders   collection
	payments resource
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(v2, v3 bigc.RawAPI) *OrdersClient {
	return &OrdersClient{
		orders:   collection{resource: resource{api: v2}, root: "/orders", noun: "order"},
		payments: resource{api: v3},
	}
}

func (c *OrdersClient) sub(orderID int, name, noun string) collection {
	return collection{
		resource: c.orders.resource,
		root:     c.orders.itemPath(orderID) + "/" + name,
		noun:     noun,
	}
}

// All implements bigc.OrdersClient.All.
func (c *OrdersClient) All(ctx context.Context, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	return c.orders.All(ctx, opts)
}

// Get implements bigc.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, orderID int, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.orders.Get(ctx, orderID, opts)
}

// Create implements bigc.OrdersClient.Create.
func (c *OrdersClient) Create(ctx context.Context, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.orders.Create(ctx, data, opts)
}

// Update implements bigc.OrdersClient.Update.
func (c *OrdersClient) Update(ctx context.Context, orderID int, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.orders.Update(ctx, orderID, data, opts)
}

// Archive implements bigc.OrdersClient.Archive. Deleting an order only
// archives it.
func (c *OrdersClient) Archive(ctx context.Context, orderID int, opts *bigc.RequestOptions) error {
	return c.orders.remove(ctx, "archiving order", c.orders.itemPath(orderID), opts)
}

// AllProducts implements bigc.OrdersClient.AllProducts.
func (c *OrdersClient) AllProducts(ctx context.Context, orderID int, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	return c.sub(orderID, "products", "order product").All(ctx, opts)
}

// GetProduct implements bigc.OrdersClient.GetProduct.
func (c *OrdersClient) GetProduct(ctx context.Context, orderID, productID int, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.sub(orderID, "products", "order product").Get(ctx, productID, opts)
}

// AllShippingAddresses implements bigc.OrdersClient.AllShippingAddresses.
func (c *OrdersClient) AllShippingAddresses(ctx context.Context, orderID int, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	return c.sub(orderID, "shipping_addresses", "order shipping address").All(ctx, opts)
}

// GetShippingAddress implements bigc.OrdersClient.GetShippingAddress.
func (c *OrdersClient) GetShippingAddress(ctx context.Context, orderID, addressID int, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.sub(orderID, "shipping_addresses", "order shipping address").Get(ctx, addressID, opts)
}

// UpdateShippingAddress implements bigc.OrdersClient.UpdateShippingAddress.
func (c *OrdersClient) UpdateShippingAddress(
	ctx context.Context,
	orderID, addressID int,
	data bigc.Object,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	return c.sub(orderID, "shipping_addresses", "order shipping address").Update(ctx, addressID, data, opts)
}

// AllShipments implements bigc.OrdersClient.AllShipments.
func (c *OrdersClient) AllShipments(ctx context.Context, orderID int, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	return c.sub(orderID, "shipments", "order shipment").All(ctx, opts)
}

// GetShipment implements bigc.OrdersClient.GetShipment.
func (c *OrdersClient) GetShipment(ctx context.Context, orderID, shipmentID int, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.sub(orderID, "shipments", "order shipment").Get(ctx, shipmentID, opts)
}

// CreateShipment implements bigc.OrdersClient.CreateShipment.
func (c *OrdersClient) CreateShipment(ctx context.Context, orderID int, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.sub(orderID, "shipments", "order shipment").Create(ctx, data, opts)
}

// UpdateShipment implements bigc.OrdersClient.UpdateShipment.
func (c *OrdersClient) UpdateShipment(
	ctx context.Context,
	orderID, shipmentID int,
	data bigc.Object,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	return c.sub(orderID, "shipments", "order shipment").Update(ctx, shipmentID, data, opts)
}

// DeleteShipment implements bigc.OrdersClient.DeleteShipment.
func (c *OrdersClient) DeleteShipment(ctx context.Context, orderID, shipmentID int, opts *bigc.RequestOptions) error {
	return c.sub(orderID, "shipments", "order shipment").Delete(ctx, shipmentID, opts)
}

// AllCoupons implements bigc.OrdersClient.AllCoupons.
func (c *OrdersClient) AllCoupons(ctx context.Context, orderID int, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	return c.sub(orderID, "coupons", "order coupon").All(ctx, opts)
}

func paymentActionsPath(orderID int, action string) string {
	if orderID == 0 {
		return "/orders/payment_actions/" + action
	}

	return "/orders/" + strconv.Itoa(orderID) + "/payment_actions/" + action
}

// GetRefundQuote implements bigc.OrdersClient.GetRefundQuote.
func (c *OrdersClient) GetRefundQuote(ctx context.Context, orderID int, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.payments.object(ctx, "getting refund quote", http.MethodPost, paymentActionsPath(orderID, "refund_quotes"), data, opts)
}

// CreateRefund implements bigc.OrdersClient.CreateRefund.
func (c *OrdersClient) CreateRefund(ctx context.Context, orderID int, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.payments.object(ctx, "creating refund", http.MethodPost, paymentActionsPath(orderID, "refunds"), data, opts)
}

// AllRefunds implements bigc.OrdersClient.AllRefunds.
func (c *OrdersClient) AllRefunds(ctx context.Context, orderID int, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	return c.payments.list(ctx, paymentActionsPath(orderID, "refunds"), opts)
}

// GetRefund implements bigc.OrdersClient.GetRefund.
func (c *OrdersClient) GetRefund(ctx context.Context, refundID int, opts *bigc.RequestOptions) (bigc.Object, error) {
	items, err := c.payments.objects(ctx, "getting refund", http.MethodGet, paymentActionsPath(0, "refunds"), nil,
		opts.WithParams(bigc.Object{constants.ParamIDIn: refundID}))

	return single(items, err, bigc.ErrNotFound, "")
}
