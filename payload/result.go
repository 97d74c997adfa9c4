package payload

// ParseResult is reported by the CLI for every parsed header value.
type ParseResult struct {
	Input     string    `json:"input"`
	Canonical string    `json:"canonical,omitempty"`
	Range     *Document `json:"range,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// CheckResult is reported by the CLI check command.
type CheckResult struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
