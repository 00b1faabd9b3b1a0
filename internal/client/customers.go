package client

import (
	"context"
	"iter"
	"net/http"

	"github.com/fivetwenty-io/bigc/internal/constants"
	"github.com/fivetwenty-io/bigc/pkg/bigc"
)

const (
	customersPath          = "/customers"
	customerAddressesPath  = "/customers/addresses"
	customerFormFieldsPath = "/customers/form-field-values"

	addressExistsMessage = "This address already exists."
)

// CustomersClient implements bigc.CustomersClient. The v3 customers API
// works on batches; the single-entity methods wrap a batch of one.
type CustomersClient struct {
	resource
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(v3 bigc.RawAPI) *CustomersClient {
	return &CustomersClient{resource{api: v3}}
}

// All implements bigc.CustomersClient.All. Customers are always listed with
// cursors.
func (c *CustomersClient) All(ctx context.Context, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	cursor := bigc.ListOptions{Cursor: true}
	if opts != nil {
		cursor = *opts
		cursor.Cursor = true
	}

	return c.list(ctx, customersPath, &cursor)
}

// Get implements bigc.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, customerID int, opts *bigc.RequestOptions) (bigc.Object, error) {
	items, err := c.objects(ctx, "getting customer", http.MethodGet, customersPath, nil,
		opts.WithParams(bigc.Object{constants.ParamIDIn: customerID}))

	return single(items, err, bigc.ErrNotFound, "")
}

// CreateMany implements bigc.CustomersClient.CreateMany.
func (c *CustomersClient) CreateMany(ctx context.Context, data []bigc.Object, opts *bigc.RequestOptions) ([]bigc.Object, error) {
	return c.objects(ctx, "creating customers", http.MethodPost, customersPath, data, opts)
}

// Create implements bigc.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	items, err := c.CreateMany(ctx, []bigc.Object{data}, opts)

	return single(items, err, bigc.ErrInvalidData, "")
}

// UpdateMany implements bigc.CustomersClient.UpdateMany.
func (c *CustomersClient) UpdateMany(ctx context.Context, data []bigc.Object, opts *bigc.RequestOptions) ([]bigc.Object, error) {
	return c.objects(ctx, "updating customers", http.MethodPut, customersPath, data, opts)
}

// Update implements bigc.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, customerID int, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	items, err := c.UpdateMany(ctx, []bigc.Object{merged(data, bigc.Object{"id": customerID})}, opts)

	return single(items, err, bigc.ErrNotFound, "")
}

// DeleteMany implements bigc.CustomersClient.DeleteMany. The customers to
// delete are selected with filters such as id:in.
func (c *CustomersClient) DeleteMany(ctx context.Context, opts *bigc.RequestOptions) error {
	return c.remove(ctx, "deleting customers", customersPath, opts)
}

// Delete implements bigc.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, customerID int, opts *bigc.RequestOptions) error {
	return c.DeleteMany(ctx, opts.WithParams(bigc.Object{constants.ParamIDIn: customerID}))
}

// UpdateFormFields implements bigc.CustomersClient.UpdateFormFields.
func (c *CustomersClient) UpdateFormFields(ctx context.Context, data []bigc.Object, opts *bigc.RequestOptions) ([]bigc.Object, error) {
	return c.objects(ctx, "updating customer form fields", http.MethodPut, customerFormFieldsPath, data, opts)
}

// UpdateFormField implements bigc.CustomersClient.UpdateFormField.
func (c *CustomersClient) UpdateFormField(
	ctx context.Context,
	customerID int,
	data bigc.Object,
	opts *bigc.RequestOptions,
) (bigc.Object, error) {
	items, err := c.UpdateFormFields(ctx, []bigc.Object{merged(bigc.Object{"customer_id": customerID}, data)}, opts)

	return single(items, err, bigc.ErrInvalidData, "")
}

// AllAddresses implements bigc.CustomersClient.AllAddresses. Filter by
// customer with the customer_id:in param.
func (c *CustomersClient) AllAddresses(ctx context.Context, opts *bigc.ListOptions) iter.Seq2[bigc.Object, error] {
	return c.list(ctx, customerAddressesPath, opts)
}

// GetAddress implements bigc.CustomersClient.GetAddress.
func (c *CustomersClient) GetAddress(ctx context.Context, customerID, addressID int, opts *bigc.RequestOptions) (bigc.Object, error) {
	items, err := c.objects(ctx, "getting customer address", http.MethodGet, customerAddressesPath, nil,
		opts.WithParams(bigc.Object{
			constants.ParamCustomerIDIn: customerID,
			constants.ParamIDIn:         addressID,
		}))

	return single(items, err, bigc.ErrNotFound, "")
}

// CreateAddresses implements bigc.CustomersClient.CreateAddresses.
func (c *CustomersClient) CreateAddresses(ctx context.Context, data []bigc.Object, opts *bigc.RequestOptions) ([]bigc.Object, error) {
	return c.objects(ctx, "creating customer addresses", http.MethodPost, customerAddressesPath, data, opts)
}

// CreateAddress implements bigc.CustomersClient.CreateAddress. The platform
// silently skips duplicates, which is reported as ErrInvalidData.
func (c *CustomersClient) CreateAddress(ctx context.Context, customerID int, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	items, err := c.CreateAddresses(ctx, []bigc.Object{merged(bigc.Object{"customer_id": customerID}, data)}, opts)

	return single(items, err, bigc.ErrInvalidData, addressExistsMessage)
}

// UpdateAddresses implements bigc.CustomersClient.UpdateAddresses.
func (c *CustomersClient) UpdateAddresses(ctx context.Context, data []bigc.Object, opts *bigc.RequestOptions) ([]bigc.Object, error) {
	return c.objects(ctx, "updating customer addresses", http.MethodPut, customerAddressesPath, data, opts)
}

// UpdateAddress implements bigc.CustomersClient.UpdateAddress.
func (c *CustomersClient) UpdateAddress(ctx context.Context, addressID int, data bigc.Object, opts *bigc.RequestOptions) (bigc.Object, error) {
	items, err := c.UpdateAddresses(ctx, []bigc.Object{merged(bigc.Object{"id": addressID}, data)}, opts)

	return single(items, err, bigc.ErrInvalidData, addressExistsMessage)
}

// DeleteAddresses implements bigc.CustomersClient.DeleteAddresses.
func (c *CustomersClient) DeleteAddresses(ctx context.Context, opts *bigc.RequestOptions) error {
	return c.remove(ctx, "deleting customer addresses", customerAddressesPath, opts)
}

// DeleteAddress implements bigc.CustomersClient.DeleteAddress.
func (c *CustomersClient) DeleteAddress(ctx context.Context, addressID int, opts *bigc.RequestOptions) error {
	return c.DeleteAddresses(ctx, opts.WithParams(bigc.Object{constants.ParamIDIn: addressID}))
}
