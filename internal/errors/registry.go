package errors

import "sort"

const docBase = "https://melt-ui.dev/errors/"

// ErrorTemplate is a registered error code.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

var registry = map[string]ErrorTemplate{
	// Configuration (M001-M009)
	"M001": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "melt.yaml could not be parsed.",
		DocURL:   docBase + "M001",
	},
	"M002": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
		DocURL:   docBase + "M002",
	},

	// Themes (M010-M019)
	"M010": {
		Category: CategoryTheme,
		Message:  "Theme file could not be loaded",
		Detail:   "The theme file is missing or malformed.",
		DocURL:   docBase + "M010",
	},
	"M011": {
		Category: CategoryTheme,
		Message:  "Unknown theme file format",
		Detail:   "Theme files must be YAML (.yaml, .yml) or TOML (.toml).",
		DocURL:   docBase + "M011",
	},
	"M012": {
		Category: CategoryTheme,
		Message:  "Unknown theme",
		Detail:   "The named theme is not built in.",
		DocURL:   docBase + "M012",
	},

	// Gallery server (M020-M029)
	"M020": {
		Category: CategoryServer,
		Message:  "Server failed",
		Detail:   "The gallery server stopped with an error.",
		DocURL:   docBase + "M020",
	},
	"M021": {
		Category: CategoryCLI,
		Message:  "Unknown demo",
		Detail:   "No demo is registered under this name. Run `melt demos` to list them.",
		DocURL:   docBase + "M021",
	},

	// Live channel (M030-M039)
	"M030": {
		Category: CategoryProtocol,
		Message:  "Invalid live message",
		Detail:   "The websocket message is not a JSON event.",
		DocURL:   docBase + "M030",
	},
	"M031": {
		Category: CategoryProtocol,
		Message:  "Handler not found",
		Detail:   "The element's handler was not bound in the last render. The page may be stale.",
		DocURL:   docBase + "M031",
	},
	"M032": {
		Category: CategoryRuntime,
		Message:  "Render failed",
		Detail:   "The demo could not be rendered.",
		DocURL:   docBase + "M032",
	},
}

// Codes returns every registered code, sorted.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
