package bigc

import (
	"maps"
	"time"
)

// RequestOptions carries the per-call knobs shared by every request.
type RequestOptions struct {
	// Params are encoded as the query string. Slice and array values are
	// joined with commas; everything else is formatted with fmt.
	Params map[string]any
	// Headers are merged with the standard headers, which always win.
	Headers map[string]string
	// Timeout bounds each attempt. Zero uses the client default.
	Timeout time.Duration
	// Retries overrides the number of retries after the first attempt.
	// Nil uses the client default for GET and 0 for everything else.
	Retries *int
}

// ListOptions configures a paginated request.
type ListOptions struct {
	RequestOptions

	// PageSize overrides the platform's maximum page size.
	PageSize int
	// Cursor selects cursor pagination instead of page numbers (v3 only).
	Cursor bool
}

// Ptr returns a pointer to v, e.g. for RequestOptions.Retries.
func Ptr[T any](v T) *T {
	return &v
}

// Clone returns a copy of the options with its maps copied.
func (o *RequestOptions) Clone() *RequestOptions {
	if o == nil {
		return &RequestOptions{}
	}

	clone := *o
	clone.Params = maps.Clone(o.Params)
	clone.Headers = maps.Clone(o.Headers)

	return &clone
}

// WithParams returns a copy of the options with extra merged into Params.
// Values in extra replace existing ones.
func (o *RequestOptions) WithParams(extra map[string]any) *RequestOptions {
	clone := o.Clone()
	if clone.Params == nil {
		clone.Params = make(map[string]any, len(extra))
	}

	maps.Copy(clone.Params, extra)

	return clone
}

// Request returns the embedded request options, tolerating a nil receiver.
func (o *ListOptions) Request() *RequestOptions {
	if o == nil {
		return nil
	}

	return &o.RequestOptions
}
