package model

import "errors"

// FetchErrorKind classifies why a weather lookup failed.
type FetchErrorKind string

const (
	CityNotFound      FetchErrorKind = "CITY_NOT_FOUND"
	NetworkFailure    FetchErrorKind = "NETWORK_FAILURE"
	MalformedResponse FetchErrorKind = "MALFORMED_RESPONSE"
	ProviderError     FetchErrorKind = "PROVIDER_ERROR"
)

// FetchError describes the failure of a lookup for a single city. Message, when
// set, is the user-facing reason; Err keeps the underlying cause for the chain.
type FetchError struct {
	Kind    FetchErrorKind
	City    string
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a classified lookup error for a city.
func NewFetchError(kind FetchErrorKind, city string, message string, err error) *FetchError {
	return &FetchError{
		Kind:    kind,
		City:    city,
		Message: message,
		Err:     err,
	}
}

// AsFetchError extracts a FetchError from err's chain, if one is present.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
