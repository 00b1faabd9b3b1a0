package client

import (
	"context"
	"iter"
	"net/http"
	"strconv"

	"github.com/fivetwenty-io/bigc/pkg/bigc"
)

// CategoriesClient implements bigc.CategoriesClient.
type CategoriesClient struct {
	collection
}

// NewCategoriesClient creates a new categories client.
func NewCategoriesClient(v3 bigc.RawAPI) *CategoriesClient {
	return &CategoriesClient{collection{resource: resource{api: v3}, root: "/catalog/categories", noun: "category"}}
}

// ProductsClient implements bigc.ProductsClient.
type ProductsClient struct {
	collection
}

// NewProductsClient creates a new products client.
func NewProductsClient(v3 bigc.RawAPI) *ProductsClient {
	return &ProductsClient{collection{resource: resource{api: v3}, root: "/catalog/products", noun: "product"}}
}

// ProductVariantsClient implements bigc.ProductVariantsClient. Variants live
// under their product, so every call takes the product id first.
type ProductVariantsClient struct {
	resource
}

// NewProductVariantsClient creates a new product variants client.
func NewProductVariantsClient(v3 bigc.RawAPI) *ProductVariantsClient {
	return &ProductVariantsClient{resource{api: v3}}
}

func (c *ProductVariantsClient) variants(productID int) collection {
	return collection{
		resource: c.resource,
		root:     "/catalog/products/" + strconv.Itoa(productID) + "/variants",
		noun:     "product variant",
	}
}

// All implements bigc.ProductVariantsClient.All.
func (c *ProductVariantsClient) All(ctx context.Context, productID int, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	return c.variants(productID).All(ctx, opts)
}

// Get implements bigc.ProductVariantsClient.Get.
func (c *ProductVariantsClient) Get(ctx context.Context, productID, variantID int, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.variants(productID).Get(ctx, variantID, opts)
}

// Create implements bigc.ProductVariantsClient.Create.
func (c *ProductVariantsClient) Create(ctx context.Context, productID int, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	return c.variants(productID).Create(ctx, data, opts)
}

// Update implements bigc.ProductVariantsClient.Update.
func (c *ProductVariantsClient) Update(
	ctx context.Context,
	productID, variantID int,
	data bigc.Object,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	return c.variants(productID).Update(ctx, variantID, data, opts)
}

// Delete implements bigc.ProductVariantsClient.Delete.
func (c *ProductVariantsClient) Delete(ctx context.Context, productID, variantID int, opts *bigc.RequestOptions) error {
	return c.variants(productID).Delete(ctx, variantID, opts)
}

// PricingClient implements bigc.PricingClient.
type PricingClient struct {
	resource
}

// NewPricingClient creates a new pricing client.
func NewPricingClient(v3 bigc.RawAPI) *PricingClient {
	return &PricingClient{resource{api: v3}}
}

// GetPricing implements bigc.PricingClient.GetPricing. The platform computes
// prices from a POST body, so the call is never retried.
func (c *PricingClient) GetPricing(ctx context.Context, data bigc.Object, opts *bigc.RequestOptions) ([]bigc.Object, error) {
	return c.objects(ctx, "getting pricing", http.MethodPost, "/pricing/products", data, opts)
}
