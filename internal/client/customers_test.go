package client

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/bigc/pkg/bigc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomersClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("filters by id", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{body: envelope(t, []any{map[string]any{"id": 42, "email": "jane@example.com"}})}
		client := NewTestClient(t, store)

		customer, err := client.Customers().Get(context.Background(), 42,
			&bigc.RequestOptions{Params: map[string]any{"include": []string{"addresses"}}})
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", customer["email"])

		request := store.last(t)
		assert.Equal(t, "/stores/abc/v3/customers", request.Path)
		assert.Equal(t, "42", request.Query.Get("id:in"))
		assert.Equal(t, "addresses", request.Query.Get("include"))
	})

	t.Run("no match is not found", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{body: envelope(t, []any{})}
		client := NewTestClient(t, store)

		_, err := client.Customers().Get(context.Background(), 42, nil)
		require.ErrorIs(t, err, bigc.ErrNotFound)
		assert.Equal(t, "The requested entity does not exist.", err.Error())
	})
}

func TestCustomersClient_Batches(t *testing.T) {
	t.Parallel()

	t.Run("update sets the id", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{body: envelope(t, []any{map[string]any{"id": 42, "first_name": "Jane"}})}
		client := NewTestClient(t, store)

		data := bigc.Object{"first_name": "Jane"}

		customer, err := client.Customers().Update(context.Background(), 42, data, nil)
		require.NoError(t, err)
		assert.Equal(t, "Jane", customer["first_name"])
		assert.NotContains(t, data, "id")

		request := store.last(t)
		assert.Equal(t, "PUT", request.Method)
		assert.JSONEq(t, `[{"id":42,"first_name":"Jane"}]`, request.Body)
	})

	t.Run("create sends a batch of one", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{body: envelope(t, []any{map[string]any{"id": 1}})}
		client := NewTestClient(t, store)

		_, err := client.Customers().Create(context.Background(), bigc.Object{"email": "a@b.c"}, nil)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"email":"a@b.c"}]`, store.last(t).Body)
	})

	t.Run("form field carries the customer", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{body: envelope(t, []any{map[string]any{"name": "color", "value": "red"}})}
		client := NewTestClient(t, store)

		field, err := client.Customers().UpdateFormField(context.Background(), 42, bigc.Object{"name": "color", "value": "red"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "red", field["value"])

		request := store.last(t)
		assert.Equal(t, "/stores/abc/v3/customers/form-field-values", request.Path)
		assert.JSONEq(t, `[{"customer_id":42,"name":"color","value":"red"}]`, request.Body)
	})
}

func TestCustomersClient_Addresses(t *testing.T) {
	t.Parallel()

	t.Run("get filters by customer and id", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{body: envelope(t, []any{map[string]any{"id": 5, "city": "Austin"}})}
		client := NewTestClient(t, store)

		address, err := client.Customers().GetAddress(context.Background(), 42, 5, nil)
		require.NoError(t, err)
		assert.Equal(t, "Austin", address["city"])

		request := store.last(t)
		assert.Equal(t, "/stores/abc/v3/customers/addresses", request.Path)
		assert.Equal(t, "42", request.Query.Get("customer_id:in"))
		assert.Equal(t, "5", request.Query.Get("id:in"))
	})

	t.Run("get without match", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, &fakeStore{body: envelope(t, []any{})})

		_, err := client.Customers().GetAddress(context.Background(), 42, 5, nil)
		require.ErrorIs(t, err, bigc.ErrNotFound)
	})

	t.Run("duplicate create is invalid data", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{body: envelope(t, []any{})}
		client := NewTestClient(t, store)

		_, err := client.Customers().CreateAddress(context.Background(), 42, bigc.Object{"city": "Austin"}, nil)
		require.ErrorIs(t, err, bigc.ErrInvalidData)
		assert.Equal(t, "This address already exists.", err.Error())
		assert.JSONEq(t, `[{"customer_id":42,"city":"Austin"}]`, store.last(t).Body)
	})

	t.Run("duplicate update is invalid data", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, &fakeStore{body: envelope(t, []any{})})

		_, err := client.Customers().UpdateAddress(context.Background(), 5, bigc.Object{"city": "Austin"}, nil)
		require.ErrorIs(t, err, bigc.ErrInvalidData)
		assert.Equal(t, "This address already exists.", err.Error())
	})
}

func TestCustomersClient_All(t *testing.T) {
	t.Parallel()

	store := &fakeStore{body: `{"data":[{"id":1},{"id":2}],"meta":{"cursor_pagination":{"end_cursor":"x","links":{}}}}`}
	client := NewTestClient(t, store)

	var ids []any

	for customer, err := range client.Customers().All(context.Background(), &bigc.ListOptions{PageSize: 10}) {
		require.NoError(t, err)

		ids = append(ids, customer["id"])
	}

	assert.Equal(t, []any{float64(1), float64(2)}, ids)

	request := store.last(t)
	assert.Equal(t, "10", request.Query.Get("limit"))
	assert.False(t, request.Query.Has("page"))
	assert.Equal(t, 1, store.count())
}

func TestCustomersClient_CallerFieldsWin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(client *Client) error
		want string
	}{
		{
			name: "form field keeps caller customer_id",
			call: func(client *Client) error {
				_, err := client.Customers().UpdateFormField(context.Background(), 42,
					bigc.Object{"customer_id": 7, "name": "color"}, nil)

				return err
			},
			want: `[{"customer_id":7,"name":"color"}]`,
		},
		{
			name: "create address keeps caller customer_id",
			call: func(client *Client) error {
				_, err := client.Customers().CreateAddress(context.Background(), 42,
					bigc.Object{"customer_id": 7, "city": "Austin"}, nil)

				return err
			},
			want: `[{"customer_id":7,"city":"Austin"}]`,
		},
		{
			name: "update address keeps caller id",
			call: func(client *Client) error {
				_, err := client.Customers().UpdateAddress(context.Background(), 5,
					bigc.Object{"id": 9, "city": "Austin"}, nil)

				return err
			},
			want: `[{"id":9,"city":"Austin"}]`,
		},
		{
			name: "update customer forces the id",
			call: func(client *Client) error {
				_, err := client.Customers().Update(context.Background(), 42,
					bigc.Object{"id": 9, "first_name": "Jane"}, nil)

				return err
			},
			want: `[{"id":42,"first_name":"Jane"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{body: envelope(t, []any{map[string]any{"id": 1}})}
			client := NewTestClient(t, store)

			require.NoError(t, tt.call(client))
			assert.JSONEq(t, tt.want, store.last(t).Body)
		})
	}
}

func TestMerged(t *testing.T) {
	t.Parallel()

	base := bigc.Object{"id": 1, "name": "a"}
	overrides := bigc.Object{"name": "b"}

	out := merged(base, overrides)
	assert.Equal(t, bigc.Object{"id": 1, "name": "b"}, out)
	assert.Equal(t, bigc.Object{"id": 1, "name": "a"}, base)
	assert.Equal(t, bigc.Object{"name": "b"}, overrides)
}
