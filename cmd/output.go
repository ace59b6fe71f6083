package cmd

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/bnema/pomodesk/internal/adapters/export"
	"github.com/bnema/pomodesk/internal/domain"
	"github.com/spf13/cobra"
)

// writeJSON prints value through its export view so --json output uses the
// same field names as the stored documents.
func writeJSON(cmd *cobra.Command, value any) error {
	view, err := export.View(value)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

// parseTimeFlag reads an RFC 3339 flag value. An empty value clears the field.
func parseTimeFlag(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be an RFC 3339 timestamp")
	}

	return &parsed, nil
}

func optionalString(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return &raw
}
