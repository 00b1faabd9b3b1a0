// Package api implements the two API generations of the platform on top of
// the request core: URL layout, envelope handling and pagination.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/bigc/internal/constants"
	bigchttp "github.com/fivetwenty-io/bigc/internal/http"
	"github.com/fivetwenty-io/bigc/pkg/bigc"
)

// StoreURL returns the versioned root of a store, e.g.
// https://api.bigcommerce.com/stores/abc123/v3/.
func StoreURL(endpoint, storeHash, version string) string {
	return strings.TrimSuffix(endpoint, "/") + fmt.Sprintf(constants.StoresPathFormat, storeHash, version)
}

// base holds what both generations share: the request core and the verbs
// built on top of Request.
type base struct {
	core   *bigchttp.Client
	decode func(*bigchttp.Response) (json.RawMessage, error)
}

// Request performs one logical call and returns the decoded body, or nil for
// an empty success response.
func (b *base) Request(
	ctx context.Context,
	method, path string,
	body any,
	opts *bigc.RequestOptions,
) (json.RawMessage, error) {
	resp, err := b.core.Do(ctx, &bigchttp.Request{
		Method:  method,
		Path:    path,
		Body:    body,
		Options: opts,
	})
	if err != nil {
		return nil, err
	}

	if resp.Empty() {
		return nil, nil
	}

	return b.decode(resp)
}

// Get performs a GET request.
func (b *base) Get(ctx context.Context, path string, opts *bigc.RequestOptions) (json.RawMessage, error) {
	return b.Request(ctx, "GET", path, nil, opts)
}

// Post performs a POST request.
func (b *base) Post(ctx context.Context, path string, body any, opts *bigc.RequestOptions) (json.RawMessage, error) {
	return b.Request(ctx, "POST", path, body, opts)
}

// Put performs a PUT request.
func (b *base) Put(ctx context.Context, path string, body any, opts *bigc.RequestOptions) (json.RawMessage, error) {
	return b.Request(ctx, "PUT", path, body, opts)
}

// Delete performs a DELETE request.
func (b *base) Delete(ctx context.Context, path string, opts *bigc.RequestOptions) (json.RawMessage, error) {
	return b.Request(ctx, "DELETE", path, nil, opts)
}

// pageSize resolves the requested page size against the platform maximum.
func pageSize(opts *bigc.ListOptions, maximum int) (int, error) {
	if opts == nil || opts.PageSize == 0 {
		return maximum, nil
	}

	if opts.PageSize < 0 {
		return 0, fmt.Errorf("%w: %d", bigc.ErrInvalidPageSize, opts.PageSize)
	}

	return opts.PageSize, nil
}

// checkParams rejects caller params that would clash with the engine's own
// pagination keys.
func checkParams(opts *bigc.RequestOptions, reserved ...string) error {
	if opts == nil {
		return nil
	}

	for _, key := range reserved {
		if _, ok := opts.Params[key]; ok {
			return fmt.Errorf("%w: %q", bigc.ErrPaginationParams, key)
		}
	}

	return nil
}

// decodeList decodes a page body into its items.
func decodeList(raw json.RawMessage) ([]json.RawMessage, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, fmt.Errorf("%w: expected a list, got null", bigc.ErrUnexpectedPayload)
	}

	var items []json.RawMessage

	err := json.Unmarshal(raw, &items)
	if err != nil {
		return nil, fmt.Errorf("%w: expected a list: %w", bigc.ErrUnexpectedPayload, err)
	}

	return items, nil
}
