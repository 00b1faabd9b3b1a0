package client

import (
	"context"
	"iter"
	"net/http"
	"strconv"

	"github.com/fivetwenty-io/bigc/pkg/bigc"
)

// collection is the plain list/get/create/update/delete shape shared by most
// resources.
type collection struct {
	resource

	root string
	noun string
}

func (c collection) itemPath(id int) string {
	return c.root + "/" + strconv.Itoa(id)
}

// All lists every entity of the collection.
func (c collection) All(ctx context.Context, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	return c.list(ctx, c.root, opts)
}

// Get returns one entity.
func (c collection) Get(ctx context.Context, id int, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "getting "+c.noun, http.MethodGet, c.itemPath(id), nil, opts)
}

// Create creates one entity.
func (c collection) Create(ctx context.Context, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "creating "+c.noun, http.MethodPost, c.root, data, opts)
}

// Update updates one entity.
func (c collection) Update(ctx context.Context, id int, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.object(ctx, "updating "+c.noun, http.MethodPut, c.itemPath(id), data, opts)
}

// Delete deletes one entity.
func (c collection) Delete(ctx context.Context, id int, opts *bigc.RequestOptions) error {
	return c.remove(ctx, "deleting "+c.noun, c.itemPath(id), opts)
}
