package client

import (
	"context"
	"iter"

	"github.com/fivetwenty-io/bigc/pkg/bigc"
)

// CurrenciesClient implements bigc.CurrenciesClient. Currencies are read-only.
type CurrenciesClient struct {
	store collection
}

// NewCurrenciesClient creates a new currencies client.
func NewCurrenciesClient(v2 bigc.RawAPI) *CurrenciesClient {
	return &CurrenciesClient{store: collection{resource: resource{api: v2}, root: "/currencies", noun: "currency"}}
}

// All implements bigc.CurrenciesClient.All.
func (c *CurrenciesClient) All(ctx context.Context, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	return c.store.All(ctx, opts)
}

// Get implements bigc.CurrenciesClient.Get.
func (c *CurrenciesClient) Get(ctx context.Context, currencyID int, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.store.Get(ctx, currencyID, opts)
}
