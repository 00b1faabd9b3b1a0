package bigc

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Kind classifies a failed call. Kinds form a shallow tree: every status kind
// belongs to the client or server family, and every family belongs to ErrAPI.
// A Kind is itself an error so it can be used as an errors.Is target.
type Kind struct {
	name           string
	status         int
	defaultMessage string
	family         *Kind
}

// Name returns the kind's identifier, e.g. "not_found".
func (k *Kind) Name() string {
	return k.name
}

// Status returns the canonical HTTP status code of the kind, or 0 for
// families and kinds that do not originate from a response.
func (k *Kind) Status() int {
	return k.status
}

// DefaultMessage returns the message used when no explicit one is available.
func (k *Kind) DefaultMessage() string {
	return k.defaultMessage
}

// Family returns the parent kind, or nil for ErrAPI.
func (k *Kind) Family() *Kind {
	return k.family
}

// Error implements the error interface.
func (k *Kind) Error() string {
	return k.defaultMessage
}

// In reports whether k is target or descends from it.
func (k *Kind) In(target *Kind) bool {
	for cur := k; cur != nil; cur = cur.family {
		if cur == target {
			return true
		}
	}

	return false
}

// Families.
var (
	ErrAPI = &Kind{
		name:           "api_error",
		defaultMessage: "Request to BigCommerce failed.",
	}
	ErrClient = &Kind{
		name:           "client_error",
		defaultMessage: "The request to BigCommerce was not valid.",
		family:         ErrAPI,
	}
	ErrServer = &Kind{
		name:           "server_error",
		defaultMessage: "BigCommerce failed to process the request.",
		family:         ErrAPI,
	}
)

// Client error kinds (4xx).
var (
	ErrBadRequest = &Kind{
		name:           "bad_request",
		status:         http.StatusBadRequest,
		defaultMessage: "The request was malformed.",
		family:         ErrClient,
	}
	ErrUnauthorized = &Kind{
		name:           "unauthorized",
		status:         http.StatusUnauthorized,
		defaultMessage: "The access token is missing or not valid for this store.",
		family:         ErrClient,
	}
	ErrForbidden = &Kind{
		name:           "forbidden",
		status:         http.StatusForbidden,
		defaultMessage: "The access token does not have the scopes required for this operation.",
		family:         ErrClient,
	}
	ErrNotFound = &Kind{
		name:           "not_found",
		status:         http.StatusNotFound,
		defaultMessage: "The requested entity does not exist.",
		family:         ErrClient,
	}
	ErrConflict = &Kind{
		name:           "conflict",
		status:         http.StatusConflict,
		defaultMessage: "The request conflicts with the current state of the entity.",
		family:         ErrClient,
	}
	ErrPayloadTooLarge = &Kind{
		name:           "payload_too_large",
		status:         http.StatusRequestEntityTooLarge,
		defaultMessage: "The request payload is too large.",
		family:         ErrClient,
	}
	ErrInvalidData = &Kind{
		name:           "invalid_data",
		status:         http.StatusUnprocessableEntity,
		defaultMessage: "The request data is not valid.",
		family:         ErrClient,
	}
	ErrLocked = &Kind{
		name:           "locked",
		status:         http.StatusLocked,
		defaultMessage: "The requested entity is locked.",
		family:         ErrClient,
	}
	ErrTooManyRequests = &Kind{
		name:           "too_many_requests",
		status:         http.StatusTooManyRequests,
		defaultMessage: "The store's rate limit has been exceeded.",
		family:         ErrClient,
	}
)

// Server error kinds (5xx).
var (
	ErrInternalServer = &Kind{
		name:           "internal_server_error",
		status:         http.StatusInternalServerError,
		defaultMessage: "An error has occurred within the BigCommerce server.",
		family:         ErrServer,
	}
	ErrBadGateway = &Kind{
		name:           "bad_gateway",
		status:         http.StatusBadGateway,
		defaultMessage: "BigCommerce received an invalid response from an upstream server.",
		family:         ErrServer,
	}
	ErrServiceUnavailable = &Kind{
		name:           "service_unavailable",
		status:         http.StatusServiceUnavailable,
		defaultMessage: "The store is currently unavailable.",
		family:         ErrServer,
	}
	ErrGatewayTimeout = &Kind{
		name:           "gateway_timeout",
		status:         http.StatusGatewayTimeout,
		defaultMessage: "The request to BigCommerce timed out.",
		family:         ErrServer,
	}
	ErrInsufficientStorage = &Kind{
		name:           "insufficient_storage",
		status:         http.StatusInsufficientStorage,
		defaultMessage: "The store has exceeded its plan's limit for this resource.",
		family:         ErrServer,
	}
)

// ErrNetwork is raised when no response was obtained at all.
var ErrNetwork = &Kind{
	name:           "network_error",
	defaultMessage: "A network error occurred while contacting BigCommerce.",
	family:         ErrAPI,
}

var statusKinds = map[int]*Kind{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusUnprocessableEntity:   ErrInvalidData,
	http.StatusLocked:                ErrLocked,
	http.StatusTooManyRequests:       ErrTooManyRequests,
	http.StatusInternalServerError:   ErrInternalServer,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
	http.StatusGatewayTimeout:        ErrGatewayTimeout,
	http.StatusInsufficientStorage:   ErrInsufficientStorage,
}

// Resolve returns the kind for an HTTP status code. Exact matches win, then
// the 4xx and 5xx families; anything else resolves to ErrAPI.
func Resolve(status int) *Kind {
	if kind, ok := statusKinds[status]; ok {
		return kind
	}

	switch {
	case status >= 400 && status < 500:
		return ErrClient
	case status >= 500 && status < 600:
		return ErrServer
	default:
		return ErrAPI
	}
}

// TransientStatus reports whether a response with this status is worth
// retrying.
func TransientStatus(status int) bool {
	switch status {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// APIError is the single error type returned for a failed platform call.
type APIError struct {
	// Kind classifies the failure.
	Kind *Kind
	// StatusCode is 0 when no response was received.
	StatusCode int
	// Message is the explicit message, usually taken from the response body.
	Message string
	// Errors holds per-field messages when the platform sent them.
	Errors map[string]any
	// Response is the raw response; its body has already been consumed.
	Response *http.Response
	// Body is the raw response body.
	Body []byte
	// Err is the underlying transport error, if any.
	Err error
}

// NewError creates an error of the given kind with its canonical status.
func NewError(kind *Kind, message string) *APIError {
	return &APIError{
		Kind:       kind,
		StatusCode: kind.status,
		Message:    message,
	}
}

// NewResponseError classifies a non-success response.
func NewResponseError(resp *http.Response, body []byte) *APIError {
	message, fieldErrors := ExtractMessage(body)

	return &APIError{
		Kind:       Resolve(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    message,
		Errors:     fieldErrors,
		Response:   resp,
		Body:       body,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Kind == nil {
		return ErrAPI.defaultMessage
	}

	return e.Kind.defaultMessage
}

// Unwrap returns the underlying transport error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches the error's kind and all of its families.
func (e *APIError) Is(target error) bool {
	kind, ok := target.(*Kind)
	if !ok {
		return false
	}

	if e.Kind == nil {
		return kind == ErrAPI
	}

	return e.Kind.In(kind)
}

// ExtractMessage pulls a human message and per-field errors out of an error
// body. Object bodies use "title" and "errors"; array bodies use the first
// element's "message". Anything else, including malformed JSON, yields
// empty results.
func ExtractMessage(body []byte) (string, map[string]any) {
	var decoded any

	err := json.Unmarshal(body, &decoded)
	if err != nil {
		return "", nil
	}

	switch value := decoded.(type) {
	case map[string]any:
		message, _ := value["title"].(string)
		fieldErrors, _ := value["errors"].(map[string]any)

		return message, fieldErrors
	case []any:
		if len(value) == 0 {
			return "", nil
		}

		first, ok := value[0].(map[string]any)
		if !ok {
			return "", nil
		}

		message, _ := first["message"].(string)

		return message, nil
	default:
		return "", nil
	}
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsTransient checks if the error is one the request core retries.
func IsTransient(err error) bool {
	apiErr := &APIError{}
	if !errors.As(err, &apiErr) || apiErr.Kind == nil {
		return false
	}

	if apiErr.Kind == ErrNetwork {
		return true
	}

	return TransientStatus(apiErr.Kind.status)
}

// Static errors for local precondition violations. These are never retried.
var (
	ErrInvalidPath         = errors.New("path must not contain a query string or fragment")
	ErrNegativeRetries     = errors.New("retries must not be negative")
	ErrRetryNotAllowed     = errors.New("POST requests cannot be retried")
	ErrPaginationParams    = errors.New("params already contain pagination keys")
	ErrInvalidPageSize     = errors.New("page size must be positive")
	ErrCursorUnsupported   = errors.New("cursor pagination is only available on the v3 API")
	ErrUnexpectedPayload   = errors.New("unexpected response payload")
	ErrConfigRequired      = errors.New("config is required")
	ErrStoreHashRequired   = errors.New("store hash is required")
	ErrAccessTokenRequired = errors.New("access token is required")
)
