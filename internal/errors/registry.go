package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Usage errors (E001-E019)

	"E001": {
		Category:   CategoryUsage,
		Message:    "Hook called outside component render",
		Suggestion: "Call hooks only from a component's Render function",
	},
	"E002": {
		Category:   CategoryUsage,
		Message:    "Hook order changed between renders",
		Suggestion: "Call hooks unconditionally and in the same order on every render",
	},
	"E003": {
		Category:   CategoryUsage,
		Message:    "Invalid context token",
		Suggestion: "Create contexts with hooks.CreateContext",
	},
	"E004": {
		Category:   CategoryUsage,
		Message:    "Hook slot type mismatch",
		Suggestion: "Call hooks unconditionally and in the same order on every render",
	},

	// Effect errors (E020-E039)

	"E020": {
		Category: CategoryEffect,
		Message:  "Effect stop failed",
	},
	"E021": {
		Category: CategoryEffect,
		Message:  "Effect setup panicked",
	},
	"E022": {
		Category: CategoryEffect,
		Message:  "Effect cleanup panicked",
	},

	// Config errors (E040-E059)

	"E040": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Suggestion: "Check hooks.toml for syntax errors",
	},
	"E041": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// Render errors (E060-E079)

	"E060": {
		Category:   CategoryRender,
		Message:    "Component render panicked",
		Suggestion: "Check the component named in the detail; the layout keeps its previous tree",
	},
	"E061": {
		Category:   CategoryRender,
		Message:    "Layout not started",
		Suggestion: "Call Start before Render",
	},
	"E062": {
		Category: CategoryRender,
		Message:  "Layout closed",
	},
	"E063": {
		Category: CategoryRender,
		Message:  "Layout already started",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
