// Package bigclient provides the main entry point for creating BigCommerce
// API clients that implement the bigc.Client interface.
//
// Quick start
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
//
//	  cli, err := bigclient.NewWithToken("abc123", "access-token")
//	  if err != nil { log.Fatal(err) }
//
//	  order, err := cli.Orders().Get(ctx, 100, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = order
//	}
//
// Configuration from the environment
//
// LoadConfig reads BIGC_* variables, optionally seeded from dotenv files, and
// an optional YAML file named by BIGC_CONFIG_FILE:
//
//	BIGC_STORE_HASH=abc123
//	BIGC_ACCESS_TOKEN=...
//	BIGC_TIMEOUT=30s
//	BIGC_GET_RETRIES=3
//	BIGC_LOG_LEVEL=debug
//
//	cfg, err := bigclient.LoadConfig(".env")
//	if err != nil { log.Fatal(err) }
//	cli, err := bigclient.New(cfg)
package bigclient
