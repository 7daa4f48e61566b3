package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "No skilllink.json found",
		Detail:   "The configuration file skilllink.json was not found in the project directory.",
		DocURL:   "https://skilllink.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid skilllink.json",
		Detail:   "The configuration file could not be parsed.",
		DocURL:   "https://skilllink.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field holds a value outside its allowed range.",
		DocURL:   "https://skilllink.dev/docs/errors/E102",
	},

	// ============================================
	// Storage Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryStorage,
		Message:  "Data directory unavailable",
		Detail:   "The data directory could not be created or opened for writing.",
		DocURL:   "https://skilllink.dev/docs/errors/E120",
	},
	// ============================================
	// Transport Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryTransport,
		Message:  "Gateway failed to start",
		Detail:   "The HTTP gateway could not bind to the configured address.",
		DocURL:   "https://skilllink.dev/docs/errors/E140",
	},
	"E141": {
		Category: CategoryTransport,
		Message:  "Chat connection failed",
		Detail:   "The WebSocket connection to the chat endpoint could not be established.",
		DocURL:   "https://skilllink.dev/docs/errors/E141",
	},

	// ============================================
	// CLI Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryCLI,
		Message:  "Invalid command arguments",
		Detail:   "The command was invoked with arguments it does not accept.",
		DocURL:   "https://skilllink.dev/docs/errors/E160",
	},
}
