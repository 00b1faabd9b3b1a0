package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/bigc/pkg/bigc"
	"github.com/google/uuid"
)

// CartsClient implements bigc.CartsClient.
type CartsClient struct {
	resource
}

// NewCartsClient creates a new carts client.
func NewCartsClient(v3 bigc.RawAPI) *CartsClient {
	return &CartsClient{resource{api: v3}}
}

func cartPath(cartID uuid.UUID) string {
	return "/carts/" + cartID.String()
}

// Get implements bigc.CartsClient.Get.
func (c *CartsClient) Get(ctx context.Context, cartID uuid.UUID, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "getting cart", http.MethodGet, cartPath(cartID), nil, opts)
}

// Create implements bigc.CartsClient.Create.
func (c *CartsClient) Create(ctx context.Context, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "creating cart", http.MethodPost, "/carts", data, opts)
}

// Update implements bigc.CartsClient.Update.
func (c *CartsClient) Update(ctx context.Context, cartID uuid.UUID, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "updating cart", http.MethodPut, cartPath(cartID), data, opts)
}

// Delete implements bigc.CartsClient.Delete.
func (c *CartsClient) Delete(ctx context.Context, cartID uuid.UUID, opts *bigc.RequestOptions) error {
	return c.remove(ctx, "deleting cart", cartPath(cartID), opts)
}

// AddLineItems implements bigc.CartsClient.AddLineItems.
func (c *CartsClient) AddLineItems(ctx context.Context, cartID uuid.UUID, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "adding cart line items", http.MethodPost, cartPath(cartID)+"/items", data, opts)
}

// UpdateLineItem implements bigc.CartsClient.UpdateLineItem.
func (c *CartsClient) UpdateLineItem(
	ctx context.Context,
	cartID, itemID uuid.UUID,
	data bigc.Object,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	path := cartPath(cartID) + "/items/" + itemID.String()

	return c.object(ctx, "updating cart line item", http.MethodPut, path, data, opts)
}

// DeleteLineItem implements bigc.CartsClient.DeleteLineItem.
func (c *CartsClient) DeleteLineItem(ctx context.Context, cartID, itemID uuid.UUID, opts *bigc.RequestOptions) (bigc.Object, error) {
	path := cartPath(cartID) + "/items/" + itemID.String()

	return c.object(ctx, "deleting cart line item", http.MethodDelete, path, nil, opts)
}

// CreateRedirectURL implements bigc.CartsClient.CreateRedirectURL.
func (c *CartsClient) CreateRedirectURL(ctx context.Context, cartID uuid.UUID, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "creating cart redirect URL", http.MethodPost, cartPath(cartID)+"/redirect_urls", nil, opts)
}
