// Package bookclient provides the entry point for constructing a catalog API
// client that implements the bookshelf.Client interface.
//
// It layers endpoint normalization and HTTP transport configuration on top of
// the types defined in the bookshelf package.
//
// Quick start
//
//	cli, err := bookclient.NewWithEndpoint("https://books.example.com/api")
//	if err != nil { log.Fatal(err) }
//
//	publishers, err := cli.GetPublishers(ctx)
//
// Requests are not retried unless bookshelf.Config.RetryMax is set.
package bookclient
