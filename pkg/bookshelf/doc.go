// Package bookshelf provides the types and interfaces for reading a book
// catalog REST API.
//
// # Overview
//
// The bookshelf package defines the catalog records (Book, Publisher), the
// Client interface used to fetch them, and the errors returned by client
// implementations. A concrete client is provided by the bookclient package,
// which wires configuration and transport:
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/bookshelf/pkg/bookclient"
//	  "github.com/fivetwenty-io/bookshelf/pkg/bookshelf"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := bookclient.New(&bookshelf.Config{APIEndpoint: "https://books.example.com/api"})
//	  if err != nil { log.Fatal(err) }
//
//	  books, err := cli.GetBooks(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = books
//	}
//
// # Errors
//
// Transport and decoding errors are wrapped and returned as-is. A non-2xx
// response is returned as *APIError; IsNotFound and StatusCode help branching
// on it.
package bookshelf
