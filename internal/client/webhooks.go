package client

import "github.com/fivetwenty-io/bigc/pkg/bigc"

// WebhooksClient implements bigc.WebhooksClient.
type WebhooksClient struct {
	collection
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(v3 bigc.RawAPI) *WebhooksClient {
	return &WebhooksClient{collection{resource: resource{api: v3}, root: "/hooks", noun: "webhook"}}
}
