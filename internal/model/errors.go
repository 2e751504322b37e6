package model

// InvalidInputError fails the whole analyze call: malformed page maps,
// out-of-bounds offsets, non-UTF-8 text. The caller never receives
// partial clause or risk data alongside one.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// ConfigurationError is raised when a rule catalog fails validation.
// It is always raised at load time, never mid-analysis.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid rule catalog: " + e.Reason
}
