package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/bookshelf/internal/constants"
	"github.com/fivetwenty-io/bookshelf/pkg/bookshelf"
)

const (
	booksBody      = `[{"pk":1,"title":"Dune","description":"Spice and sand","publisher":1,"authors":[1]},{"pk":2,"title":"Emma","description":"Matchmaking","publisher":2,"authors":[2]}]`
	publishersBody = `[{"pk":1,"name":"Chilton"},{"pk":2,"name":"John Murray"}]`
)

type catalogAPI struct {
	server          *httptest.Server
	bookRequests    atomic.Int32
	booksStatus     int
	publishersCalls atomic.Int32
}

func newCatalogAPI(t *testing.T) *catalogAPI {
	t.Helper()

	api := &catalogAPI{booksStatus: http.StatusOK}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/books/", func(w http.ResponseWriter, r *http.Request) {
		api.bookRequests.Add(1)

		if api.booksStatus != http.StatusOK {
			w.WriteHeader(api.booksStatus)
			_, _ = w.Write([]byte(`{"detail":"A server error occurred."}`))

			return
		}

		_, _ = w.Write([]byte(booksBody))
	})
	mux.HandleFunc("GET /api/publishers/", func(w http.ResponseWriter, r *http.Request) {
		api.publishersCalls.Add(1)
		_, _ = w.Write([]byte(publishersBody))
	})

	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)

	return api
}

func (a *catalogAPI) url() string {
	return a.server.URL + "/api"
}

// runCommand executes cmd with a fresh viper state holding values.
func runCommand(t *testing.T, cmd *cobra.Command, values map[string]interface{}, args ...string) (string, string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	for key, value := range values {
		viper.Set(key, value)
	}

	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestBooksCommand_JSON(t *testing.T) {
	api := newCatalogAPI(t)

	stdout, _, err := runCommand(t, NewBooksCommand(), map[string]interface{}{
		"api":    api.url(),
		"output": constants.FormatJSON,
	})
	require.NoError(t, err)

	var books []bookshelf.Book
	require.NoError(t, json.Unmarshal([]byte(stdout), &books))
	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "Emma", books[1].Title)
}

func TestBooksCommand_Table(t *testing.T) {
	api := newCatalogAPI(t)

	stdout, _, err := runCommand(t, NewBooksCommand(), map[string]interface{}{"api": api.url()})
	require.NoError(t, err)

	assert.Contains(t, stdout, "Books")
	assert.Contains(t, stdout, "Dune")
	assert.Contains(t, stdout, "Emma")
	assert.Contains(t, stdout, "nature?id=2")
	assert.NotContains(t, stdout, "[Books]")
}

func TestBooksCommand_PropagatesAPIErrors(t *testing.T) {
	api := newCatalogAPI(t)
	api.booksStatus = http.StatusInternalServerError

	_, _, err := runCommand(t, NewBooksCommand(), map[string]interface{}{"api": api.url()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list books")
	assert.Equal(t, http.StatusInternalServerError, bookshelf.StatusCode(err))
}

func TestBooksCommand_RequiresAPI(t *testing.T) {
	_, _, err := runCommand(t, NewBooksCommand(), nil)
	require.ErrorIs(t, err, constants.ErrNoAPIConfigured)
}

func TestBooksCommand_RejectsUnknownOutput(t *testing.T) {
	api := newCatalogAPI(t)

	_, _, err := runCommand(t, NewBooksCommand(), map[string]interface{}{
		"api":    api.url(),
		"output": "xml",
	})
	require.ErrorIs(t, err, constants.ErrUnknownOutputFormat)
	assert.Equal(t, int32(0), api.bookRequests.Load())
}

func TestPublishersCommand_YAML(t *testing.T) {
	api := newCatalogAPI(t)

	stdout, _, err := runCommand(t, NewPublishersCommand(), map[string]interface{}{
		"api":    api.url(),
		"output": constants.FormatYAML,
	})
	require.NoError(t, err)

	var publishers []bookshelf.Publisher
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &publishers))
	assert.Equal(t, []bookshelf.Publisher{{PK: 1, Name: "Chilton"}, {PK: 2, Name: "John Murray"}}, publishers)
}

func TestShowCommand_DefaultsToBooks(t *testing.T) {
	api := newCatalogAPI(t)

	stdout, _, err := runCommand(t, NewShowCommand(), map[string]interface{}{"api": api.url()})
	require.NoError(t, err)

	assert.Contains(t, stdout, "[Books] | Publishers")
	assert.Contains(t, stdout, "Dune")
	assert.NotContains(t, stdout, "Chilton")
	assert.Equal(t, int32(1), api.bookRequests.Load())
	assert.Equal(t, int32(1), api.publishersCalls.Load())
}

func TestShowCommand_PublishersView(t *testing.T) {
	api := newCatalogAPI(t)

	stdout, _, err := runCommand(t, NewShowCommand(), map[string]interface{}{"api": api.url()}, "--view", "publishers")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Books | [Publishers]")
	assert.Contains(t, stdout, "Chilton")
	assert.Contains(t, stdout, "John Murray")
	assert.NotContains(t, stdout, "Dune")
}

func TestShowCommand_SwallowsFetchErrors(t *testing.T) {
	api := newCatalogAPI(t)
	api.booksStatus = http.StatusInternalServerError

	stdout, stderr, err := runCommand(t, NewShowCommand(), map[string]interface{}{"api": api.url()})
	require.NoError(t, err)

	assert.Contains(t, stdout, "No books found")
	assert.Contains(t, stderr, "getBookData")
	assert.Equal(t, int32(1), api.publishersCalls.Load())
}

func TestShowCommand_RejectsUnknownView(t *testing.T) {
	api := newCatalogAPI(t)

	_, _, err := runCommand(t, NewShowCommand(), map[string]interface{}{"api": api.url()}, "--view", "authors")
	require.ErrorIs(t, err, constants.ErrUnknownView)
	assert.Equal(t, int32(0), api.bookRequests.Load())
}

func TestConfigShow_JSON(t *testing.T) {
	stdout, _, err := runCommand(t, NewConfigCommand(), map[string]interface{}{
		"api":    "http://example.com",
		"output": constants.FormatJSON,
	}, "show")
	require.NoError(t, err)

	var values map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &values))
	assert.Equal(t, "http://example.com", values["api"])
	assert.Equal(t, constants.DefaultListenAddress, values["listen"])
	assert.Equal(t, "30s", values["timeout"])
	assert.Equal(t, "0", values["retry_max"])
}

func TestConfigShow_Table(t *testing.T) {
	stdout, _, err := runCommand(t, NewConfigCommand(), nil, "show")
	require.NoError(t, err)

	assert.Contains(t, stdout, "session_ttl")
	assert.Contains(t, stdout, "30m0s")
	assert.Contains(t, stdout, constants.NotAvailable)
}

func TestConfigGet(t *testing.T) {
	stdout, _, err := runCommand(t, NewConfigCommand(), map[string]interface{}{
		"timeout": 5 * time.Second,
	}, "get", "timeout")
	require.NoError(t, err)
	assert.Equal(t, "5s\n", stdout)

	_, _, err = runCommand(t, NewConfigCommand(), nil, "get", "colour")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)
}

func TestLoadSettings_ReadsEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.SetEnvPrefix("BOOKSHELF")
	viper.AutomaticEnv()

	t.Setenv("BOOKSHELF_API", "http://books.example.com")
	t.Setenv("BOOKSHELF_RETRY_MAX", "3")
	t.Setenv("BOOKSHELF_SESSION_TTL", "5m")

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "http://books.example.com", settings.API)
	assert.Equal(t, 3, settings.RetryMax)
	assert.Equal(t, 5*time.Minute, settings.SessionTTL)
	assert.Equal(t, constants.FormatTable, settings.Output)
}

func TestVersionCommand_JSON(t *testing.T) {
	stdout, _, err := runCommand(t, NewVersionCommand("1.2.3", "abc123", "2024-01-01"), map[string]interface{}{
		"output": constants.FormatJSON,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc123","built":"2024-01-01"}`, stdout)
}

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()
	assert.Equal(t, "serve", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	listenFlag := cmd.Flags().Lookup("listen")
	require.NotNil(t, listenFlag)
	assert.Equal(t, "l", listenFlag.Shorthand)
	assert.Equal(t, constants.DefaultListenAddress, listenFlag.DefValue)
}
