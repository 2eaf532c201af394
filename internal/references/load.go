package references

import (
	"encoding/json"
	"os"

	"notice-backend/internal/shared/telemetry"
)

// Load reads the reference dataset from path and builds the index. A missing
// or unreadable dataset is not fatal: the index comes up empty and callers
// fall back to the default citation set.
func Load(path string) *Index {
	data, err := os.ReadFile(path)
	if err != nil {
		telemetry.Error("references.load_failed", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return NewIndex(nil)
	}

	var raw []RawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		telemetry.Error("references.parse_failed", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return NewIndex(nil)
	}

	telemetry.Info("references.loaded", map[string]any{
		"path":    path,
		"records": len(raw),
	})
	return NewIndex(raw)
}
