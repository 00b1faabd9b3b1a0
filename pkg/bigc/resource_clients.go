package bigc

import (
	"context"
	"iter"

	"github.com/google/uuid"
)

// CartsClient manages storefront carts (v3).
type CartsClient interface {
	Get(ctx context.Context, cartID uuid.UUID, opts *RequestOptions) (Object, error)
	Create(ctx context.Context, data Object, opts *RequestOptions) (Object, error)
	Update(ctx context.Context, cartID uuid.UUID, data Object, opts *RequestOptions) (Object, error)
	Delete(ctx context.Context, cartID uuid.UUID, opts *RequestOptions) error
	AddLineItems(ctx context.Context, cartID uuid.UUID, data Object, opts *RequestOptions) (Object, error)
	UpdateLineItem(ctx context.Context, cartID, itemID uuid.UUID, data Object, opts *RequestOptions) (Object, error)
	// DeleteLineItem returns the updated cart, or nil when the cart became empty
	// and was deleted.
	DeleteLineItem(ctx context.Context, cartID, itemID uuid.UUID, opts *RequestOptions) (Object, error)
	CreateRedirectURL(ctx context.Context, cartID uuid.UUID, opts *RequestOptions) (Object, error)
}

// CategoriesClient manages catalog categories (v3).
type CategoriesClient interface {
	All(ctx context.Context, opts *ListOptions) iter.Seq2[Object, error]
	Get(ctx context.Context, categoryID int, opts *RequestOptions) (Object, error)
	Create(ctx context.Context, data Object, opts *RequestOptions) (Object, error)
	Update(ctx context.Context, categoryID int, data Object, opts *RequestOptions) (Object, error)
	Delete(ctx context.Context, categoryID int, opts *RequestOptions) error
}

// CheckoutsClient manages checkouts (v3).
type CheckoutsClient interface {
	Get(ctx context.Context, checkoutID uuid.UUID, opts *RequestOptions) (Object, error)
	Update(ctx context.Context, checkoutID uuid.UUID, data Object, opts *RequestOptions) (Object, error)
	AddBillingAddress(ctx context.Context, checkoutID uuid.UUID, data Object, opts *RequestOptions) (Object, error)
	UpdateBillingAddress(ctx context.Context, checkoutID uuid.UUID, addressID string, data Object, opts *RequestOptions) (Object, error)
	AddConsignments(ctx context.Context, checkoutID uuid.UUID, data []Object, opts *RequestOptions) (Object, error)
	UpdateConsignment(ctx context.Context, checkoutID uuid.UUID, consignmentID string, data Object, opts *RequestOptions) (Object, error)
	DeleteConsignment(ctx context.Context, checkoutID uuid.UUID, consignmentID string, opts *RequestOptions) (Object, error)
	AddCoupon(ctx context.Context, checkoutID uuid.UUID, data Object, opts *RequestOptions) (Object, error)
	DeleteCoupon(ctx context.Context, checkoutID uuid.UUID, couponCode string, opts *RequestOptions) (Object, error)
	AddDiscounts(ctx context.Context, checkoutID uuid.UUID, data Object, opts *RequestOptions) (Object, error)
	CreateOrder(ctx context.Context, checkoutID uuid.UUID, opts *RequestOptions) (Object, error)
}

// CurrenciesClient reads store currencies (v2).
type CurrenciesClient interface {
	All(ctx context.Context, opts *ListOptions) iter.Seq2[Object, error]
	Get(ctx context.Context, currencyID int, opts *RequestOptions) (Object, error)
}

// CustomerGroupsClient manages customer groups (v2).
type CustomerGroupsClient interface {
	All(ctx context.Context, opts *ListOptions) iter.Seq2[Object, error]
	Get(ctx context.Context, groupID int, opts *RequestOptions) (Object, error)
	Create(ctx context.Context, data Object, opts *RequestOptions) (Object, error)
	Update(ctx context.Context, groupID int, data Object, opts *RequestOptions) (Object, error)
	Delete(ctx context.Context, groupID int, opts *RequestOptions) error
}

// CustomersClient manages customers and their address books (v3).
type CustomersClient interface {
	All(ctx context.Context, opts *ListOptions) iter.Seq2[Object, error]
	Get(ctx context.Context, customerID int, opts *RequestOptions) (Object, error)
	CreateMany(ctx context.Context, data []Object, opts *RequestOptions) ([]Object, error)
	Create(ctx context.Context, data Object, opts *RequestOptions) (Object, error)
	UpdateMany(ctx context.Context, data []Object, opts *RequestOptions) ([]Object, error)
	Update(ctx context.Context, customerID int, data Object, opts *RequestOptions) (Object, error)
	DeleteMany(ctx context.Context, opts *RequestOptions) error
	Delete(ctx context.Context, customerID int, opts *RequestOptions) error
	UpdateFormFields(ctx context.Context, data []Object, opts *RequestOptions) ([]Object, error)
	UpdateFormField(ctx context.Context, customerID int, data Object, opts *RequestOptions) (Object, error)

	AllAddresses(ctx context.Context, opts *ListOptions) iter.Seq2[Object, error]
	GetAddress(ctx context.Context, customerID, addressID int, opts *RequestOptions) (Object, error)
	CreateAddresses(ctx context.Context, data []Object, opts *RequestOptions) ([]Object, error)
	CreateAddress(ctx context.Context, customerID int, data Object, opts *RequestOptions) (Object, error)
	UpdateAddresses(ctx context.Context, data []Object, opts *RequestOptions) ([]Object, error)
	UpdateAddress(ctx context.Context, addressID int, data Object, opts *RequestOptions) (Object, error)
	DeleteAddresses(ctx context.Context, opts *RequestOptions) error
	DeleteAddress(ctx context.Context, addressID int, opts *RequestOptions) error
}

// OrdersClient manages orders (v2) and their payment actions (v3).
type OrdersClient interface {
	All(ctx context.Context, opts *ListOptions) iter.Seq2[Object, error]
	Get(ctx context.Context, orderID int, opts *RequestOptions) (Object, error)
	Create(ctx context.Context, data Object, opts *RequestOptions) (Object, error)
	Update(ctx context.Context, orderID int, data Object, opts *RequestOptions) (Object, error)
	Archive(ctx context.Context, orderID int, opts *RequestOptions) error

	AllProducts(ctx context.Context, orderID int, opts *ListOptions) iter.Seq2[Object, error]
	GetProduct(ctx context.Context, orderID, productID int, opts *RequestOptions) (Object, error)

	AllShippingAddresses(ctx context.Context, orderID int, opts *ListOptions) iter.Seq2[Object, error]
	GetShippingAddress(ctx context.Context, orderID, addressID int, opts *RequestOptions) (Object, error)
	UpdateShippingAddress(ctx context.Context, orderID, addressID int, data Object, opts *RequestOptions) (Object, error)

	AllShipments(ctx context.Context, orderID int, opts *ListOptions) iter.Seq2[Object, error]
	GetShipment(ctx context.Context, orderID, shipmentID int, opts *RequestOptions) (Object, error)
	CreateShipment(ctx context.Context, orderID int, data Object, opts *RequestOptions) (Object, error)
	UpdateShipment(ctx context.Context, orderID, shipmentID int, data Object, opts *RequestOptions) (Object, error)
	DeleteShipment(ctx context.Context, orderID, shipmentID int, opts *RequestOptions) error

	AllCoupons(ctx context.Context, orderID int, opts *ListOptions) iter.Seq2[Object, error]

	GetRefundQuote(ctx context.Context, orderID int, data Object, opts *RequestOptions) (Object, error)
	CreateRefund(ctx context.Context, orderID int, data Object, opts *RequestOptions) (Object, error)
	// AllRefunds lists the refunds of one order, or of every order when
	// orderID is 0.
	AllRefunds(ctx context.Context, orderID int, opts *ListOptions) iter.Seq2[Object, error]
	GetRefund(ctx context.Context, refundID int, opts *RequestOptions) (Object, error)
}

// PricingClient computes storefront prices (v3).
type PricingClient interface {
	GetPricing(ctx context.Context, data Object, opts *RequestOptions) ([]Object, error)
}

// ProductsClient manages catalog products (v3).
type ProductsClient interface {
	All(ctx context.Context, opts *ListOptions) iter.Seq2[Object, error]
	Get(ctx context.Context, productID int, opts *RequestOptions) (Object, error)
	Create(ctx context.Context, data Object, opts *RequestOptions) (Object, error)
	Update(ctx context.Context, productID int, data Object, opts *RequestOptions) (Object, error)
	Delete(ctx context.Context, productID int, opts *RequestOptions) error
}

// ProductVariantsClient manages the variants of a product (v3).
type ProductVariantsClient interface {
	All(ctx context.Context, productID int, opts *ListOptions) iter.Seq2[Object, error]
	Get(ctx context.Context, productID, variantID int, opts *RequestOptions) (Object, error)
	Create(ctx context.Context, productID int, data Object, opts *RequestOptions) (Object, error)
	Update(ctx context.Context, productID, variantID int, data Object, opts *RequestOptions) (Object, error)
	Delete(ctx context.Context, productID, variantID int, opts *RequestOptions) error
}

// WebhooksClient manages webhook subscriptions (v3).
type WebhooksClient interface {
	All(ctx context.Context, opts *ListOptions) iter.Seq2[Object, error]
	Get(ctx context.Context, webhookID int, opts *RequestOptions) (Object, error)
	Create(ctx context.Context, data Object, opts *RequestOptions) (Object, error)
	Update(ctx context.Context, webhookID int, data Object, opts *RequestOptions) (Object, error)
	Delete(ctx context.Context, webhookID int, opts *RequestOptions) error
}
