// Package configuration handles the reading of optional configuration
// files providing defaults for the command-line extraction tool.
// Command-line flags always override what is read here.
package configuration

import (
	"strconv"
)

type envProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings are the defaults for the command-line tool.
type Settings struct {
	OutputDir string
	Verify    bool
	UI        bool
}

// Handler is the principal implementation for configuration reading.
type Handler struct {
	EnvOps envProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(envOps envProvider) *Handler {
	return &Handler{
		EnvOps: envOps,
	}
}

// LoadSettings reads [Settings] from the given configuration files.
// Files that do not exist or cannot be parsed are skipped, so the
// returned settings always hold usable defaults.
func (h *Handler) LoadSettings(filenames ...string) *Settings {
	settings := &Settings{
		OutputDir: "schemas",
		Verify:    false,
		UI:        false,
	}

	for _, filename := range filenames {
		envMap, err := h.EnvOps.Read(filename)
		if err != nil {
			continue
		}

		if value := mapKeyToString(envMap, "SCHEMAS_OUTPUT_DIR"); value != "" {
			settings.OutputDir = value
		}
		if value, ok := mapKeyToBool(envMap, "SCHEMAS_VERIFY"); ok {
			settings.Verify = value
		}
		if value, ok := mapKeyToBool(envMap, "SCHEMAS_UI"); ok {
			settings.UI = value
		}
	}

	return settings
}

func mapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

func mapKeyToBool(envMap map[string]string, key string) (value bool, ok bool) {
	raw := mapKeyToString(envMap, key)
	if raw == "" {
		return false, false
	}

	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}

	return parsed, true
}
