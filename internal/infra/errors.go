package infra

// ConfigError represents a configuration problem: a missing file, a
// malformed YAML document, or a value Validate rejects. Unlike
// domain.ParseError (a per-record ingest skip), a ConfigError is fatal —
// the fabric has nothing sensible to run against an invalid config, so
// callers at startup should treat it as unwrapped and terminal.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "config error [" + e.Field + "]: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError builds a ConfigError for the given field/underlying pair.
func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Err: err}
}
