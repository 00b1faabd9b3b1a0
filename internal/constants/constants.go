package constants

import "time"

// Platform endpoints.
const (
	// DefaultAPIEndpoint is the root of the platform's REST API.
	DefaultAPIEndpoint = "https://api.bigcommerce.com"

	// StoresPathFormat builds the per-store, per-version path prefix.
	StoresPathFormat = "/stores/%s/%s/"

	// APIVersionV2 is the legacy API generation.
	APIVersionV2 = "v2"

	// APIVersionV3 is the current API generation.
	APIVersionV3 = "v3"
)

// Request headers.
const (
	// HeaderAuthToken carries the store-level access token.
	HeaderAuthToken = "X-Auth-Token"

	// HeaderAccept is the standard Accept header.
	HeaderAccept = "Accept"

	// HeaderContentType is the standard Content-Type header.
	HeaderContentType = "Content-Type"

	// HeaderUserAgent is the standard User-Agent header.
	HeaderUserAgent = "User-Agent"

	// MediaTypeJSON is the only media type the platform speaks.
	MediaTypeJSON = "application/json"

	// DefaultUserAgent identifies this library.
	DefaultUserAgent = "bigc-go"
)

// Pagination.
const (
	// MaxV2PageSize is the largest page the legacy API returns.
	MaxV2PageSize = 250

	// MaxV3PageSize is the largest page the current API returns.
	MaxV3PageSize = 250

	// ParamLimit is the page size query parameter.
	ParamLimit = "limit"

	// ParamPage is the 1-based page number query parameter.
	ParamPage = "page"

	// ParamBefore is the reserved backwards cursor query parameter.
	ParamBefore = "before"

	// ParamAfter is the forward cursor query parameter.
	ParamAfter = "after"

	// ParamIDIn filters a collection by id.
	ParamIDIn = "id:in"

	// ParamCustomerIDIn filters a collection by customer id.
	ParamCustomerIDIn = "customer_id:in"
)

// Retry defaults.
const (
	// DefaultGetRetries is the number of retries for GET requests when a
	// loaded configuration does not say otherwise.
	DefaultGetRetries = 3

	// DefaultRetryWaitMin is the shortest pause between attempts.
	DefaultRetryWaitMin = 100 * time.Millisecond

	// DefaultRetryWaitMax caps the pause between attempts.
	DefaultRetryWaitMax = 2 * time.Second
)

// Configuration keys and environment.
const (
	// EnvPrefix is prepended to every configuration key read from the environment.
	EnvPrefix = "BIGC"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)
