package client

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/bigc/pkg/bigc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCartID     = uuid.MustParse("9c7a4e8c-1f3b-4f2e-9a51-0c1d2e3f4a5b")
	testItemID     = uuid.MustParse("0b7f9e2a-6d2c-4c1e-8f3a-5e6d7c8b9a01")
	testCheckoutID = uuid.MustParse("3f1e2d3c-4b5a-4697-8877-665544332211")
)

// TestResourceClients_Requests checks the URL, method and body every
// single-entity operation sends, and that the answer is decoded.
//
//nolint:funlen // Test functions can be longer for comprehensive testing
func TestResourceClients_Requests(t *testing.T) {
	t.Parallel()

	type operation func(ctx context.Context, c *Client) (bigc.Object, error)

	data := bigc.Object{"name": "x"}

	tests := []struct {
		name         string
		v2           bool
		call         operation
		expectedVerb string
		expectedPath string
		expectedBody string
	}{
		{
			name:         "get cart",
			call:         func(ctx context.Context, c *Client) (bigc.Object, error) { return c.Carts().Get(ctx, testCartID, nil) },
			expectedVerb: "GET",
			expectedPath: "/stores/abc/v3/carts/" + testCartID.String(),
		},
		{
			name:         "create cart",
			call:         func(ctx context.Context, c *Client) (bigc.Object, error) { return c.Carts().Create(ctx, data, nil) },
			expectedVerb: "POST",
			expectedPath: "/stores/abc/v3/carts",
			expectedBody: `{"name":"x"}`,
		},
		{
			name: "update cart line item",
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Carts().UpdateLineItem(ctx, testCartID, testItemID, data, nil)
			},
			expectedVerb: "PUT",
			expectedPath: "/stores/abc/v3/carts/" + testCartID.String() + "/items/" + testItemID.String(),
			expectedBody: `{"name":"x"}`,
		},
		{
			name: "add cart line items",
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Carts().AddLineItems(ctx, testCartID, data, nil)
			},
			expectedVerb: "POST",
			expectedPath: "/stores/abc/v3/carts/" + testCartID.String() + "/items",
			expectedBody: `{"name":"x"}`,
		},
		{
			name: "create cart redirect URL",
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Carts().CreateRedirectURL(ctx, testCartID, nil)
			},
			expectedVerb: "POST",
			expectedPath: "/stores/abc/v3/carts/" + testCartID.String() + "/redirect_urls",
		},
		{
			name: "update checkout billing address",
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Checkouts().UpdateBillingAddress(ctx, testCheckoutID, "addr-1", data, nil)
			},
			expectedVerb: "PUT",
			expectedPath: "/stores/abc/v3/checkouts/" + testCheckoutID.String() + "/billing-address/addr-1",
			expectedBody: `{"name":"x"}`,
		},
		{
			name: "add checkout consignments",
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Checkouts().AddConsignments(ctx, testCheckoutID, []bigc.Object{data}, nil)
			},
			expectedVerb: "POST",
			expectedPath: "/stores/abc/v3/checkouts/" + testCheckoutID.String() + "/consignments",
			expectedBody: `[{"name":"x"}]`,
		},
		{
			name: "delete checkout coupon",
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Checkouts().DeleteCoupon(ctx, testCheckoutID, "SUMMER", nil)
			},
			expectedVerb: "DELETE",
			expectedPath: "/stores/abc/v3/checkouts/" + testCheckoutID.String() + "/coupons/SUMMER",
		},
		{
			name: "create order from checkout",
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Checkouts().CreateOrder(ctx, testCheckoutID, nil)
			},
			expectedVerb: "POST",
			expectedPath: "/stores/abc/v3/checkouts/" + testCheckoutID.String() + "/orders",
		},
		{
			name:         "get category",
			call:         func(ctx context.Context, c *Client) (bigc.Object, error) { return c.Categories().Get(ctx, 18, nil) },
			expectedVerb: "GET",
			expectedPath: "/stores/abc/v3/catalog/categories/18",
		},
		{
			name:         "update product",
			call:         func(ctx context.Context, c *Client) (bigc.Object, error) { return c.Products().Update(ctx, 77, data, nil) },
			expectedVerb: "PUT",
			expectedPath: "/stores/abc/v3/catalog/products/77",
			expectedBody: `{"name":"x"}`,
		},
		{
			name: "create product variant",
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.ProductVariants().Create(ctx, 77, data, nil)
			},
			expectedVerb: "POST",
			expectedPath: "/stores/abc/v3/catalog/products/77/variants",
			expectedBody: `{"name":"x"}`,
		},
		{
			name: "get product variant",
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.ProductVariants().Get(ctx, 77, 5, nil)
			},
			expectedVerb: "GET",
			expectedPath: "/stores/abc/v3/catalog/products/77/variants/5",
		},
		{
			name:         "create webhook",
			call:         func(ctx context.Context, c *Client) (bigc.Object, error) { return c.Webhooks().Create(ctx, data, nil) },
			expectedVerb: "POST",
			expectedPath: "/stores/abc/v3/hooks",
			expectedBody: `{"name":"x"}`,
		},
		{
			name:         "get currency",
			v2:           true,
			call:         func(ctx context.Context, c *Client) (bigc.Object, error) { return c.Currencies().Get(ctx, 1, nil) },
			expectedVerb: "GET",
			expectedPath: "/stores/abc/v2/currencies/1",
		},
		{
			name: "update customer group",
			v2:   true,
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.CustomerGroups().Update(ctx, 4, data, nil)
			},
			expectedVerb: "PUT",
			expectedPath: "/stores/abc/v2/customer_groups/4",
			expectedBody: `{"name":"x"}`,
		},
		{
			name:         "get order",
			v2:           true,
			call:         func(ctx context.Context, c *Client) (bigc.Object, error) { return c.Orders().Get(ctx, 100, nil) },
			expectedVerb: "GET",
			expectedPath: "/stores/abc/v2/orders/100",
		},
		{
			name: "update order shipping address",
			v2:   true,
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Orders().UpdateShippingAddress(ctx, 100, 9, data, nil)
			},
			expectedVerb: "PUT",
			expectedPath: "/stores/abc/v2/orders/100/shipping_addresses/9",
			expectedBody: `{"name":"x"}`,
		},
		{
			name: "create order shipment",
			v2:   true,
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Orders().CreateShipment(ctx, 100, data, nil)
			},
			expectedVerb: "POST",
			expectedPath: "/stores/abc/v2/orders/100/shipments",
			expectedBody: `{"name":"x"}`,
		},
		{
			name: "get order product",
			v2:   true,
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Orders().GetProduct(ctx, 100, 12, nil)
			},
			expectedVerb: "GET",
			expectedPath: "/stores/abc/v2/orders/100/products/12",
		},
		{
			name: "get refund quote",
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Orders().GetRefundQuote(ctx, 100, data, nil)
			},
			expectedVerb: "POST",
			expectedPath: "/stores/abc/v3/orders/100/payment_actions/refund_quotes",
			expectedBody: `{"name":"x"}`,
		},
		{
			name: "create refund",
			call: func(ctx context.Context, c *Client) (bigc.Object, error) {
				return c.Orders().CreateRefund(ctx, 100, data, nil)
			},
			expectedVerb: "POST",
			expectedPath: "/stores/abc/v3/orders/100/payment_actions/refunds",
			expectedBody: `{"name":"x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{body: envelope(t, map[string]any{"id": 1})}
			if tt.v2 {
				store.body = `{"id":1}`
			}

			client := NewTestClient(t, store)

			result, err := tt.call(context.Background(), client)
			require.NoError(t, err)
			assert.Equal(t, bigc.Object{"id": float64(1)}, result)

			request := store.last(t)
			assert.Equal(t, tt.expectedVerb, request.Method)
			assert.Equal(t, tt.expectedPath, request.Path)

			if tt.expectedBody == "" {
				assert.Empty(t, request.Body)
			} else {
				assert.JSONEq(t, tt.expectedBody, request.Body)
			}
		})
	}
}

func TestResourceClients_Deletes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		v2            bool
		call          func(ctx context.Context, c *Client) error
		expectedPath  string
		expectedQuery string
	}{
		{
			name:         "delete cart",
			call:         func(ctx context.Context, c *Client) error { return c.Carts().Delete(ctx, testCartID, nil) },
			expectedPath: "/stores/abc/v3/carts/" + testCartID.String(),
		},
		{
			name:         "delete category",
			call:         func(ctx context.Context, c *Client) error { return c.Categories().Delete(ctx, 3, nil) },
			expectedPath: "/stores/abc/v3/catalog/categories/3",
		},
		{
			name:         "delete webhook",
			call:         func(ctx context.Context, c *Client) error { return c.Webhooks().Delete(ctx, 8, nil) },
			expectedPath: "/stores/abc/v3/hooks/8",
		},
		{
			name:         "delete product variant",
			call:         func(ctx context.Context, c *Client) error { return c.ProductVariants().Delete(ctx, 7, 2, nil) },
			expectedPath: "/stores/abc/v3/catalog/products/7/variants/2",
		},
		{
			name:          "delete customer",
			call:          func(ctx context.Context, c *Client) error { return c.Customers().Delete(ctx, 42, nil) },
			expectedPath:  "/stores/abc/v3/customers",
			expectedQuery: "id%3Ain=42",
		},
		{
			name:          "delete customer address",
			call:          func(ctx context.Context, c *Client) error { return c.Customers().DeleteAddress(ctx, 5, nil) },
			expectedPath:  "/stores/abc/v3/customers/addresses",
			expectedQuery: "id%3Ain=5",
		},
		{
			name:         "archive order",
			v2:           true,
			call:         func(ctx context.Context, c *Client) error { return c.Orders().Archive(ctx, 100, nil) },
			expectedPath: "/stores/abc/v2/orders/100",
		},
		{
			name:         "delete order shipment",
			v2:           true,
			call:         func(ctx context.Context, c *Client) error { return c.Orders().DeleteShipment(ctx, 100, 3, nil) },
			expectedPath: "/stores/abc/v2/orders/100/shipments/3",
		},
		{
			name:         "delete customer group",
			v2:           true,
			call:         func(ctx context.Context, c *Client) error { return c.CustomerGroups().Delete(ctx, 4, nil) },
			expectedPath: "/stores/abc/v2/customer_groups/4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{status: 204}
			client := NewTestClient(t, store)

			require.NoError(t, tt.call(context.Background(), client))

			request := store.last(t)
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, tt.expectedPath, request.Path)
			assert.Equal(t, tt.expectedQuery, request.Query.Encode())
		})
	}
}

func TestCartsClient_DeleteLineItem(t *testing.T) {
	t.Parallel()

	t.Run("returns the updated cart", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{body: envelope(t, map[string]any{"id": testCartID.String()})}
		client := NewTestClient(t, store)

		cart, err := client.Carts().DeleteLineItem(context.Background(), testCartID, testItemID, nil)
		require.NoError(t, err)
		assert.Equal(t, testCartID.String(), cart["id"])
	})

	t.Run("last item removed deletes the cart", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{status: 204}
		client := NewTestClient(t, store)

		cart, err := client.Carts().DeleteLineItem(context.Background(), testCartID, testItemID, nil)
		require.NoError(t, err)
		assert.Nil(t, cart)
	})
}

func TestResourceClients_Errors(t *testing.T) {
	t.Parallel()

	store := &fakeStore{status: 404, body: `{"status":404,"title":"The product was not found."}`}
	client := NewTestClient(t, store)

	_, err := client.Products().Get(context.Background(), 1, nil)
	require.ErrorIs(t, err, bigc.ErrNotFound)
	assert.True(t, bigc.IsNotFound(err))
	assert.Contains(t, err.Error(), "getting product")
	assert.Contains(t, err.Error(), "The product was not found.")
}

func TestPricingClient_GetPricing(t *testing.T) {
	t.Parallel()

	store := &fakeStore{body: envelope(t, []any{map[string]any{"product_id": 1}, map[string]any{"product_id": 2}})}
	client := NewTestClient(t, store)

	prices, err := client.Pricing().GetPricing(context.Background(), bigc.Object{"channel_id": 1}, nil)
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.InDelta(t, 2, prices[1]["product_id"], 0)

	request := store.last(t)
	assert.Equal(t, "POST", request.Method)
	assert.Equal(t, "/stores/abc/v3/pricing/products", request.Path)

	_, err = client.Pricing().GetPricing(context.Background(), bigc.Object{}, &bigc.RequestOptions{Retries: bigc.Ptr(2)})
	require.ErrorIs(t, err, bigc.ErrRetryNotAllowed)
	assert.Equal(t, 1, store.count())
}
