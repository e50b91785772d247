package constants

const (
	MsgInvalidCredentials = "Invalid username or password"
	MsgUsernameTaken      = "Username already registered"
	MsgFlightNotFound     = "Flight not found"
	MsgNotFlightOwner     = "Flight belongs to another pilot"
	MsgImportTooLarge     = "CSV exceeds maximum row count"
	MsgProviderDown       = "Flight data provider unavailable"
)

// Error codes surfaced in API responses so the mobile client can branch on
// them without string matching.
const (
	ErrCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	ErrCodeUsernameTaken      = "AUTH_USERNAME_TAKEN"
	ErrCodeFlightNotFound     = "FLIGHT_NOT_FOUND"
	ErrCodeNotFlightOwner     = "FLIGHT_FORBIDDEN"
	ErrCodeImportMalformed    = "IMPORT_MALFORMED"
	ErrCodeProviderDown       = "PROVIDER_UNAVAILABLE"
	ErrCodeNetworkError       = "NETWORK_ERROR"
)
