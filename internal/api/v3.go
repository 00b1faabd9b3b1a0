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

// V3Client is the current API. Every non-empty success body is an envelope
// whose data member is returned.
type V3Client struct {
	base
}

var _ bigc.RawAPI = (*V3Client)(nil)

// NewV3Client creates a current API client on top of core, whose base URL must
// be the store's v3 root.
func NewV3Client(core *bigchttp.Client) *V3Client {
	return &V3Client{base: base{
		core: core,
		decode: func(resp *bigchttp.Response) (json.RawMessage, error) {
			envelope, err := decodeEnvelope(resp.Body)
			if err != nil {
				return nil, err
			}

			return envelope.Data, nil
		},
	}}
}

// decodeEnvelope requires a data member; "data": null is kept as the raw
// literal and left to the caller.
func decodeEnvelope(body []byte) (*bigc.Envelope, error) {
	var envelope bigc.Envelope

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: expected an envelope: %w", bigc.ErrUnexpectedPayload, err)
	}

	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: envelope has no data", bigc.ErrUnexpectedPayload)
	}

	return &envelope, nil
}

// getPage fetches one page and keeps the envelope so the engines can read
// its pagination metadata. A nil envelope means the body was empty.
func (c *V3Client) getPage(ctx context.Context, path string, opts *bigc.RequestOptions) (*bigc.Envelope, error) {
	resp, err := c.core.Do(ctx, &bigchttp.Request{Method: "GET", Path: path, Options: opts})
	if err != nil {
		return nil, err
	}

	if resp.Empty() {
		return nil, nil
	}

	return decodeEnvelope(resp.Body)
}

// GetMany walks a collection with page numbers, or with cursors when
// opts.Cursor is set.
func (c *V3Client) GetMany(ctx context.Context, path string, opts *bigc.ListOptions) iter.Seq2[json.RawMessage, error] {
	if opts != nil && opts.Cursor {
		return c.cursorPages(ctx, path, opts)
	}

	return c.offsetPages(ctx, path, opts)
}

// offsetPages requests pages 1..total_pages, reading the bound from every
// response.
func (c *V3Client) offsetPages(ctx context.Context, path string, opts *bigc.ListOptions) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		limit, err := pageSize(opts, constants.MaxV3PageSize)
		if err != nil {
			yield(nil, err)

			return
		}

		reqOpts := opts.Request()
		if err := checkParams(reqOpts, constants.ParamLimit, constants.ParamPage); err != nil {
			yield(nil, err)

			return
		}

		for page, totalPages := 1, 1; page <= totalPages; page++ {
			envelope, err := c.getPage(ctx, path, reqOpts.WithParams(map[string]any{
				constants.ParamLimit: limit,
				constants.ParamPage:  page,
			}))
			if err != nil {
				yield(nil, err)

				return
			}

			if envelope == nil {
				return
			}

			items, err := decodeList(envelope.Data)
			if err != nil {
				yield(nil, fmt.Errorf("page %d of %s: %w", page, path, err))

				return
			}

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}

			totalPages = 0
			if envelope.Meta.Pagination != nil {
				totalPages = envelope.Meta.Pagination.TotalPages
			}
		}
	}
}

// cursorPages follows end_cursor until there is no next link or a page comes
// back empty.
func (c *V3Client) cursorPages(ctx context.Context, path string, opts *bigc.ListOptions) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		limit, err := pageSize(opts, constants.MaxV3PageSize)
		if err != nil {
			yield(nil, err)

			return
		}

		reqOpts := opts.Request()
		if err := checkParams(reqOpts, constants.ParamLimit, constants.ParamBefore, constants.ParamAfter); err != nil {
			yield(nil, err)

			return
		}

		params := map[string]any{constants.ParamLimit: limit}

		for {
			envelope, err := c.getPage(ctx, path, reqOpts.WithParams(params))
			if err != nil {
				yield(nil, err)

				return
			}

			if envelope == nil {
				return
			}

			items, err := decodeList(envelope.Data)
			if err != nil {
				yield(nil, fmt.Errorf("%s: %w", path, err))

				return
			}

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}

			cursor := envelope.Meta.CursorPagination
			if len(items) == 0 || cursor == nil || cursor.Links.Next == "" || cursor.EndCursor == "" {
				return
			}

			params[constants.ParamAfter] = cursor.EndCursor
		}
	}
}
