package bigc

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Carts() CartsClient
	Categories() CategoriesClient
	Checkouts() CheckoutsClient
	Currencies() CurrenciesClient
	CustomerGroups() CustomerGroupsClient
	Customers() CustomersClient
	Orders() OrdersClient
	Pricing() PricingClient
	Products() ProductsClient
	ProductVariants() ProductVariantsClient
	Webhooks() WebhooksClient
}

// Client is the entry point to a single store.
type Client interface {
	ResourceClients

	// V2 gives direct access to the legacy API.
	V2() RawAPI
	// V3 gives direct access to the current API.
	V3() RawAPI
}

// Config represents client configuration for building a Client.
//
// # Retries and timeouts
//
// Timeout bounds every attempt separately; an attempt that runs out of time is
// reported as ErrGatewayTimeout and retried like any other transient failure.
// GET requests are retried GetRetries times unless a call says otherwise;
// other methods are only retried when asked to, and POST never is. The pause
// between attempts grows from RetryWaitMin to RetryWaitMax; both zero means
// attempts follow each other immediately.
//
// A Config must not be modified after the client has been created.
type Config struct {
	StoreHash   string
	AccessToken string

	// APIEndpoint defaults to https://api.bigcommerce.com.
	APIEndpoint string

	Timeout      time.Duration
	GetRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	UserAgent string

	// HTTPClient supplies the transport. Its Timeout is ignored in favour of
	// Timeout above.
	HTTPClient *http.Client

	// Logger receives request logs. Nil disables logging.
	Logger *zerolog.Logger

	// Metrics records Prometheus metrics when set.
	Metrics *Metrics

	// TracerProvider creates request spans. Nil uses the global provider.
	TracerProvider trace.TracerProvider
}
