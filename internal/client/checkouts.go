package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/bigc/pkg/bigc"
	"github.com/google/uuid"
)

// CheckoutsClient implements bigc.CheckoutsClient.
type CheckoutsClient struct {
	resource
}

// NewCheckoutsClient creates a new checkouts client.
func NewCheckoutsClient(v3 bigc.RawAPI) *CheckoutsClient {
	return &CheckoutsClient{resource{api: v3}}
}

func checkoutPath(checkoutID uuid.UUID, segments ...string) string {
	path := "/checkouts/" + checkoutID.String()
	for _, segment := range segments {
		path += "/" + url.PathEscape(segment)
	}

	return path
}

// Get implements bigc.CheckoutsClient.Get.
func (c *CheckoutsClient) Get(ctx context.Context, checkoutID uuid.UUID, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "getting checkout", http.MethodGet, checkoutPath(checkoutID), nil, opts)
}

// Update implements bigc.CheckoutsClient.Update.
func (c *CheckoutsClient) Update(ctx context.Context, checkoutID uuid.UUID, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "updating checkout", http.MethodPut, checkoutPath(checkoutID), data, opts)
}

// AddBillingAddress implements bigc.CheckoutsClient.AddBillingAddress.
func (c *CheckoutsClient) AddBillingAddress(
	ctx context.Context,
	checkoutID uuid.UUID,
	data bigc.Object,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	path := checkoutPath(checkoutID, "billing-address")

	return c.object(ctx, "adding checkout billing address", http.MethodPost, path, data, opts)
}

// UpdateBillingAddress implements bigc.CheckoutsClient.UpdateBillingAddress.
func (c *CheckoutsClient) UpdateBillingAddress(
	ctx context.Context,
	checkoutID uuid.UUID,
	addressID string,
	data bigc.Object,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	path := checkoutPath(checkoutID, "billing-address", addressID)

	return c.object(ctx, "updating checkout billing address", http.MethodPut, path, data, opts)
}

// AddConsignments implements bigc.CheckoutsClient.AddConsignments.
func (c *CheckoutsClient) AddConsignments(
	ctx context.Context,
	checkoutID uuid.UUID,
	data []bigc.Object,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	path := checkoutPath(checkoutID, "consignments")

	return c.object(ctx, "adding checkout consignments", http.MethodPost, path, data, opts)
}

// UpdateConsignment implements bigc.CheckoutsClient.UpdateConsignment.
func (c *CheckoutsClient) UpdateConsignment(
	ctx context.Context,
	checkoutID uuid.UUID,
	consignmentID string,
	data bigc.Object,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	path := checkoutPath(checkoutID, "consignments", consignmentID)

	return c.object(ctx, "updating checkout consignment", http.MethodPut, path, data, opts)
}

// DeleteConsignment implements bigc.CheckoutsClient.DeleteConsignment.
func (c *CheckoutsClient) DeleteConsignment(
	ctx context.Context,
	checkoutID uuid.UUID,
	consignmentID string,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	path := checkoutPath(checkoutID, "consignments", consignmentID)

	return c.object(ctx, "deleting checkout consignment", http.MethodDelete, path, nil, opts)
}

// AddCoupon implements bigc.CheckoutsClient.AddCoupon.
func (c *CheckoutsClient) AddCoupon(ctx context.Context, checkoutID uuid.UUID, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "adding checkout coupon", http.MethodPost, checkoutPath(checkoutID, "coupons"), data, opts)
}

// DeleteCoupon implements bigc.CheckoutsClient.DeleteCoupon.
func (c *CheckoutsClient) DeleteCoupon(
	ctx context.Context,
	checkoutID uuid.UUID,
	couponCode string,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	path := checkoutPath(checkoutID, "coupons", couponCode)

	return c.object(ctx, "deleting checkout coupon", http.MethodDelete, path, nil, opts)
}

// AddDiscounts implements bigc.CheckoutsClient.AddDiscounts.
func (c *CheckoutsClient) AddDiscounts(ctx context.Context, checkoutID uuid.UUID, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "adding checkout discounts", http.MethodPost, checkoutPath(checkoutID, "discounts"), data, opts)
}

// CreateOrder implements bigc.CheckoutsClient.CreateOrder.
func (c *CheckoutsClient) CreateOrder(ctx context.Context, checkoutID uuid.UUID, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "creating order from checkout", http.MethodPost, checkoutPath(checkoutID, "orders"), nil, opts)
}
