package api

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/fivetwenty-io/bigc/internal/constants"
	bigchttp "github.com/fivetwenty-io/bigc/internal/http"
	"github.com/fivetwenty-io/bigc/pkg/bigc"
)

// V2Client is the legacy API. Bodies are returned as sent, without an
// envelope.
type V2Client struct {
	base
}

var _ bigc.RawAPI = (*V2Client)(nil)

// NewV2Client creates a legacy API client on top of core, whose base URL must
// be the store's v2 root.
func NewV2Client(core *bigchttp.Client) *V2Client {
	return &V2Client{base: base{
		core: core,
		decode: func(resp *bigchttp.Response) (json.RawMessage, error) {
			return json.RawMessage(resp.Body), nil
		},
	}}
}

// GetMany walks pages 1, 2, ... until the platform answers with an empty body
// or a page shorter than the page size. The legacy API has no cursors.
func (c *V2Client) GetMany(ctx context.Context, path string, opts *bigc.ListOptions) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		if opts != nil && opts.Cursor {
			yield(nil, bigc.ErrCursorUnsupported)

			return
		}

		limit, err := pageSize(opts, constants.MaxV2PageSize)
		if err != nil {
			yield(nil, err)

			return
		}

		reqOpts := opts.Request()
		if err := checkParams(reqOpts, constants.ParamLimit, constants.ParamPage); err != nil {
			yield(nil, err)

			return
		}

		for page := 1; ; page++ {
			raw, err := c.Get(ctx, path, reqOpts.WithParams(map[string]any{
				constants.ParamLimit: limit,
				constants.ParamPage:  page,
			}))
			if err != nil {
				yield(nil, err)

				return
			}

			if raw == nil {
				return
			}

			items, err := decodeList(raw)
			if err != nil {
				yield(nil, fmt.Errorf("page %d of %s: %w", page, path, err))

				return
			}

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}

			if len(items) < limit {
				return
			}
		}
	}
}
