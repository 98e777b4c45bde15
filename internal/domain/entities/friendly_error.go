package entities

// ErrorCategory is the closed set of user-facing failure kinds.
type ErrorCategory string

const (
	ErrorCategoryNetwork                ErrorCategory = "network"
	ErrorCategoryServerUnavailable      ErrorCategory = "server-unavailable"
	ErrorCategoryPixGenerationFailed    ErrorCategory = "pix-generation-failed"
	ErrorCategoryPixExpired             ErrorCategory = "pix-expired"
	ErrorCategoryCardInvalid            ErrorCategory = "card-invalid"
	ErrorCategoryCardRejected           ErrorCategory = "card-rejected"
	ErrorCategoryInsufficientFunds      ErrorCategory = "insufficient-funds"
	ErrorCategoryValidation             ErrorCategory = "validation"
	ErrorCategoryCustomerNameRequired   ErrorCategory = "customer-name-required"
	ErrorCategoryGiftUnavailable        ErrorCategory = "gift-unavailable"
	ErrorCategoryGiftNotFound           ErrorCategory = "gift-not-found"
	ErrorCategoryMercadoPagoSDK         ErrorCategory = "mercadopago-sdk-error"
	ErrorCategoryTimeout                ErrorCategory = "timeout"
	ErrorCategoryAuthInvalidCredentials ErrorCategory = "auth-invalid-credentials"
	ErrorCategoryUserNotFound           ErrorCategory = "user-not-found"
	ErrorCategoryEmailExists            ErrorCategory = "email-exists"
	ErrorCategorySessionExpired         ErrorCategory = "session-expired"
	ErrorCategoryUnauthorized           ErrorCategory = "unauthorized"
	ErrorCategoryWeakPassword           ErrorCategory = "weak-password"
	ErrorCategoryRegistrationFailed     ErrorCategory = "registration-failed"
	ErrorCategoryUnknown                ErrorCategory = "unknown"
)

// FriendlyError is what the guest sees when something fails.
type FriendlyError struct {
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Icon     string        `json:"icon"`
	Category ErrorCategory `json:"category"`
	CanRetry bool          `json:"canRetry"`
}
