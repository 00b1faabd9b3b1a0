package client

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"net/http"

	"github.com/fivetwenty-io/bigc/pkg/bigc"
)

// resource binds a resource client to one API generation and decodes what
// it returns into bigc.Object values.
type resource struct {
	api bigc.RawAPI
}

func (r resource) object(
	ctx context.Context,
	action, method, path string,
	body any,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	raw, err := r.api.Request(ctx, method, path, body, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	obj, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", action, err)
	}

	return obj, nil
}

func (r resource) objects(
	ctx context.Context,
	action, method, path string,
	body any,
	opts *bigc.RequestOptions,
) ([]bigc.Object, error) {
	raw, err := r.api.Request(ctx, method, path, body, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	var list []bigc.Object
	if raw == nil {
		return list, nil
	}

	err = json.Unmarshal(raw, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w: %w", action, bigc.ErrUnexpectedPayload, err)
	}

	return list, nil
}

// remove sends a DELETE and discards whatever the platform answers.
func (r resource) remove(ctx context.Context, action, path string, opts *bigc.RequestOptions) error {
	_, err := r.api.Request(ctx, http.MethodDelete, path, nil, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	return nil
}

// list walks every page of a collection.
func (r resource) list(ctx context.Context, path string, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	return func(yield func(bigc.Object, error) bool) {
		for raw, err := range r.api.GetMany(ctx, path, opts) {
			if err != nil {
				yield(nil, fmt.Errorf("listing %s: %w", path, err))

				return
			}

			obj, err := decodeObject(raw)
			if err != nil {
				yield(nil, fmt.Errorf("parsing %s item: %w", path, err))

				return
			}

			if !yield(obj, nil) {
				return
			}
		}
	}
}

// single returns the only element of a filtered collection, or an error of
// the given kind when the filter matched nothing.
func single(items []bigc.Object, err error, kind *bigc.Kind, message string) (bigc.Object, error) {
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, bigc.NewError(kind, message)
	}

	return items[0], nil
}

func decodeObject(raw json.RawMessage) (bigc.Object, error) {
	if raw == nil {
		return nil, nil
	}

	var obj bigc.Object

	err := json.Unmarshal(raw, &obj)
	if err != nil {
		return nil, fmt.Errorf("%w: expected an object: %w", bigc.ErrUnexpectedPayload, err)
	}

	return obj, nil
}

// merged returns a new object holding base overlaid with overrides.
func merged(base, overrides bigc.Object) bigc.Object {
	out := make(bigc.Object, len(base)+len(overrides))
	maps.Copy(out, base)
	maps.Copy(out, overrides)

	return out
}
