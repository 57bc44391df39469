package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Deal error codes (DEAL_*)
const (
	DealNotFound      ErrorCode = "DEAL_001"
	DealInvalidID     ErrorCode = "DEAL_002"
	DealInvalidStatus ErrorCode = "DEAL_003"
)

// Analysis error codes (ANALYSIS_*)
const (
	AnalysisNoTransactions    ErrorCode = "ANALYSIS_001"
	AnalysisInvalidRecord     ErrorCode = "ANALYSIS_002"
	AnalysisIncompleteMetrics ErrorCode = "ANALYSIS_003"
	AnalysisNotComputed       ErrorCode = "ANALYSIS_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Authorization token is invalid",
	AuthInsufficientPermission: "Insufficient permissions for this operation",

	ValidationGeneral:       "Request validation failed",
	ValidationRequiredField: "A required field is missing",
	ValidationInvalidFormat: "A field has an invalid format",
	ValidationOutOfRange:    "A field value is out of range",

	DealNotFound:      "Deal not found",
	DealInvalidID:     "Deal ID is not a valid UUID",
	DealInvalidStatus: "Deal status transition is not allowed",

	AnalysisNoTransactions:    "No transactions available for this deal",
	AnalysisInvalidRecord:     "A transaction record is malformed",
	AnalysisIncompleteMetrics: "A scorecard section could not be computed",
	AnalysisNotComputed:       "No analysis has been run for this deal",

	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A storage error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Too many requests, slow down",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return errorMessages[SystemInternalError]
}
