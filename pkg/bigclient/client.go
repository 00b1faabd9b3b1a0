package bigclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/bigc/internal/client"
	"github.com/fivetwenty-io/bigc/internal/constants"
	"github.com/fivetwenty-io/bigc/pkg/bigc"
)

// New creates a new BigCommerce API client for one store.
func New(config *bigc.Config) (bigc.Client, error) {
	if config == nil {
		return nil, bigc.ErrConfigRequired
	}

	normalized := *config
	normalized.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// normalizeEndpoint fills in the default endpoint and a missing scheme.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithToken creates a new client with a store hash and access token,
// using the default retry policy for GET requests.
func NewWithToken(storeHash, accessToken string) (bigc.Client, error) {
	return New(&bigc.Config{
		StoreHash:    storeHash,
		AccessToken:  accessToken,
		GetRetries:   constants.DefaultGetRetries,
		RetryWaitMin: constants.DefaultRetryWaitMin,
		RetryWaitMax: constants.DefaultRetryWaitMax,
	})
}

// NewFromEnv creates a new client from the environment, see LoadConfig.
func NewFromEnv(envFiles ...string) (bigc.Client, error) {
	config, err := LoadConfig(envFiles...)
	if err != nil {
		return nil, err
	}

	return New(config)
}
