package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/bookshelf/internal/constants"
)

// EncodeRenderer writes the active list as JSON or YAML.
type EncodeRenderer struct {
	Format string
}

// Render encodes the records of the active view. An empty list encodes as
// an empty sequence, never null.
func (r *EncodeRenderer) Render(w io.Writer, state State) error {
	var records interface{} = nonNil(state.Books)
	if state.ShowsPublishers() {
		records = nonNil(state.Publishers)
	}

	switch r.Format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(records)
		if err != nil {
			return fmt.Errorf("failed to encode %s as JSON: %w", state.ActiveView, err)
		}
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		err := encoder.Encode(records)
		if err != nil {
			return fmt.Errorf("failed to encode %s as YAML: %w", state.ActiveView, err)
		}

		_ = encoder.Close()
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownOutputFormat, r.Format)
	}

	return nil
}

func nonNil[T any](records []T) []T {
	if records == nil {
		return []T{}
	}

	return records
}
