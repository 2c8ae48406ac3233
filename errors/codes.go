package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Setup-time errors. These are detected before any data flows and
// abort the run.
const (
	// ErrCodeConfiguration indicates a required option is absent or has
	// an invalid value.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"
	// ErrCodeComposition indicates a sub-flow token stream did not
	// resolve to the expected plugin roles.
	ErrCodeComposition ErrorCode = "COMPOSITION"
	// ErrCodeValidation indicates a generator's check hook failed.
	ErrCodeValidation ErrorCode = "VALIDATION"
)

// Steady-state errors.
const (
	// ErrCodeLoad indicates a pipeline template could not be read.
	ErrCodeLoad ErrorCode = "LOAD"
	// ErrCodeRuntime indicates a failure inside a running pipeline.
	// Runtime errors propagate unguarded and abort the run.
	ErrCodeRuntime ErrorCode = "RUNTIME"
)

var setupCodes = map[ErrorCode]bool{
	ErrCodeConfiguration: true,
	ErrCodeComposition:   true,
	ErrCodeValidation:    true,
	ErrCodeLoad:          true,
}

// IsSetupCode returns true if the error code belongs to the setup phase,
// i.e. it is raised before any data flows.
func IsSetupCode(code ErrorCode) bool {
	return setupCodes[code]
}
