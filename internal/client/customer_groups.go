package client

import "github.com/fivetwenty-io/bigc/pkg/bigc"

// CustomerGroupsClient implements bigc.CustomerGroupsClient.
type CustomerGroupsClient struct {
	collection
}

// NewCustomerGroupsClient creates a new customer groups client.
func NewCustomerGroupsClient(v2 bigc.RawAPI) *CustomerGroupsClient {
	return &CustomerGroupsClient{collection{resource: resource{api: v2}, root: "/customer_groups", noun: "customer group"}}
}
