// Package bigc provides types, interfaces, and helpers for working with the
// BigCommerce store APIs.
//
// # Overview
//
// The bigc package defines the error taxonomy, request options, pagination
// metadata and the interfaces of the resource-oriented clients (e.g.,
// CartsClient, OrdersClient). A concrete implementation is provided by the
// bigclient package, which wires configuration, transport and both API
// generations. Most consumers should import bigclient to construct a client
// and then use the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/bigc/pkg/bigc"
//	  "github.com/fivetwenty-io/bigc/pkg/bigclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := bigclient.New(&bigc.Config{StoreHash: "abc123", AccessToken: "token"})
//	  if err != nil { log.Fatal(err) }
//
//	  product, err := cli.Products().Get(ctx, 42, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = product
//	}
//
// # Pagination
//
// Collection methods return an iter.Seq2 that fetches pages lazily. Breaking
// out of the loop stops further requests:
//
//	for product, err := range cli.Products().All(ctx, &bigc.ListOptions{PageSize: 50}) {
//	  if err != nil { /* handle error */ break }
//	  _ = product
//	}
//
// The v3 API also supports cursor pagination with ListOptions.Cursor.
//
// # Errors
//
// Failed calls return *APIError. Its Kind places the failure in a tree
// (ErrAPI > ErrClient/ErrServer/ErrNetwork > ErrNotFound, ...) and errors.Is
// matches any level of it:
//
//	if errors.Is(err, bigc.ErrClient) { /* any 4xx */ }
//
// Local precondition violations such as ErrRetryNotAllowed are plain errors
// and are reported before anything is sent.
//
// # Raw access
//
// V2 and V3 expose the underlying API generations for endpoints not covered
// by a resource client.
package bigc
