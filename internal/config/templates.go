package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# stockscout configuration

provider:
  # Polygon.io API key. May also be set via POLYGON_API_KEY.
  api_key: ""
  # Provider base URL.
  base_url: "https://api.polygon.io"
  # HTTP timeout for provider calls.
  timeout: 30s

watchlist:
  # Path of the persisted watchlist document. Empty uses the config dir.
  # May also be set via STOCKSCOUT_WATCHLIST.
  path: ""

search:
  # Idle window before a typed query is dispatched, in milliseconds.
  debounce_millis: 500

log:
  # Log level: debug, info, warn, error
  level: "info"
  console: true
  file: true
  # Empty file_path uses the default under the config dir.
  file_path: ""
  # Rotation settings: size in MB, backup count, age in days.
  max_size: 20
  max_backups: 3
  max_age: 30
`

// createTemplateConfig writes a commented starter config so a first run
// leaves something editable behind.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
