// Package client implements bigc.Client on top of the v2 and v3 APIs.
package client

import (
	"github.com/fivetwenty-io/bigc/internal/api"
	"github.com/fivetwenty-io/bigc/internal/constants"
	"github.com/fivetwenty-io/bigc/internal/http"
	"github.com/fivetwenty-io/bigc/pkg/bigc"
)

// Client implements the bigc.Client interface.
type Client struct {
	v2 *api.V2Client
	v3 *api.V3Client

	// Resource clients
	carts           bigc.CartsClient
	categories      bigc.CategoriesClient
	checkouts       bigc.CheckoutsClient
	currencies      bigc.CurrenciesClient
	customerGroups  bigc.CustomerGroupsClient
	customers       bigc.CustomersClient
	orders          bigc.OrdersClient
	pricing         bigc.PricingClient
	products        bigc.ProductsClient
	productVariants bigc.ProductVariantsClient
	webhooks        bigc.WebhooksClient
}

var _ bigc.Client = (*Client)(nil)

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *bigc.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithTimeout(config.Timeout),
		http.WithGetRetries(config.GetRetries),
		http.WithRetryWait(config.RetryWaitMin, config.RetryWaitMax),
		http.WithUserAgent(config.UserAgent),
		http.WithHTTPClient(config.HTTPClient),
		http.WithTracerProvider(config.TracerProvider),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger.With().Str("store", config.StoreHash).Logger()))
	}

	if config.Metrics != nil {
		httpOpts = append(httpOpts, http.WithMetrics(config.Metrics))
	}

	return httpOpts
}

// New creates a client for one store. The config is read once; later changes
// to it have no effect.
func New(config *bigc.Config) (*Client, error) {
	if config == nil {
		return nil, bigc.ErrConfigRequired
	}

	if config.StoreHash == "" {
		return nil, bigc.ErrStoreHashRequired
	}

	if config.AccessToken == "" {
		return nil, bigc.ErrAccessTokenRequired
	}

	if config.GetRetries < 0 {
		return nil, bigc.ErrNegativeRetries
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	httpOpts := createHTTPClientOptions(config)

	v2 := http.NewClient(api.StoreURL(endpoint, config.StoreHash, constants.APIVersionV2), config.AccessToken, httpOpts...)
	v3 := http.NewClient(api.StoreURL(endpoint, config.StoreHash, constants.APIVersionV3), config.AccessToken, httpOpts...)

	client := &Client{
		v2: api.NewV2Client(v2),
		v3: api.NewV3Client(v3),
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.carts = NewCartsClient(c.v3)
	c.categories = NewCategoriesClient(c.v3)
	c.checkouts = NewCheckoutsClient(c.v3)
	c.currencies = NewCurrenciesClient(c.v2)
	c.customerGroups = NewCustomerGroupsClient(c.v2)
	c.customers = NewCustomersClient(c.v3)
	c.orders = NewOrdersClient(c.v2, c.v3)
	c.pricing = NewPricingClient(c.v3)
	c.products = NewProductsClient(c.v3)
	c.productVariants = NewProductVariantsClient(c.v3)
	c.webhooks = NewWebhooksClient(c.v3)
}

// V2 implements bigc.Client.V2.
func (c *Client) V2() bigc.RawAPI {
	return c.v2
}

// V3 implements bigc.Client.V3.
func (c *Client) V3() bigc.RawAPI {
	return c.v3
}

// Resource client accessors

// Carts implements bigc.Client.Carts.
func (c *Client) Carts() bigc.CartsClient {
	return c.carts
}

// Categories implements bigc.Client.Categories.
func (c *Client) Categories() bigc.CategoriesClient {
	return c.categories
}

// Checkouts implements bigc.Client.Checkouts.
func (c *Client) Checkouts() bigc.CheckoutsClient {
	return c.checkouts
}

// Currencies implements bigc.Client.Currencies.
func (c *Client) Currencies() bigc.CurrenciesClient {
	return c.currencies
}

// CustomerGroups implements bigc.Client.CustomerGroups.
func (c *Client) CustomerGroups() bigc.CustomerGroupsClient {
	return c.customerGroups
}

// Customers implements bigc.Client.Customers.
func (c *Client) Customers() bigc.CustomersClient {
	return c.customers
}

// Orders implements bigc.Client.Orders.
func (c *Client) Orders() bigc.OrdersClient {
	return c.orders
}

// Pricing implements bigc.Client.Pricing.
func (c *Client) Pricing() bigc.PricingClient {
	return c.pricing
}

// Products implements bigc.Client.Products.
func (c *Client) Products() bigc.ProductsClient {
	return c.products
}

// ProductVariants implements bigc.Client.ProductVariants.
func (c *Client) ProductVariants() bigc.ProductVariantsClient {
	return c.productVariants
}

// Webhooks implements bigc.Client.Webhooks.
func (c *Client) Webhooks() bigc.WebhooksClient {
	return c.webhooks
}
