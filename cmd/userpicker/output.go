package main

import (
	"encoding/json"
	"fmt"
	"io"

	appErrors "userpicker/internal/errors"
	"userpicker/internal/picker"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// writeSelection prints the confirmed selection in the requested format.
func writeSelection(w io.Writer, selected []picker.Option, format string) error {
	switch format {
	case outputJSON:
		values := make([]picker.Candidate, len(selected))
		for i, opt := range selected {
			values[i] = opt.Value
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(values); err != nil {
			return fmt.Errorf("encode selection: %w", err)
		}
		return nil
	case outputText, "":
		for _, opt := range selected {
			if _, err := fmt.Fprintln(w, opt.Label); err != nil {
				return fmt.Errorf("write selection: %w", err)
			}
		}
		return nil
	default:
		return appErrors.Newf(appErrors.CodeConfigurationError, "unknown output format %q (want text or json)", format)
	}
}
