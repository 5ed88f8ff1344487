package constants

import "errors"

// Login errors.
var (
	ErrNoAuthorizationCode = errors.New("authorization response carried no code")
	ErrStateMismatch       = errors.New("authorization response state does not match request")
	ErrLoginTimeout        = errors.New("timed out waiting for the browser login to complete")
	ErrNoTokenEndpoint     = errors.New("issuer metadata carries no token endpoint")
	ErrNoAuthEndpoint      = errors.New("issuer metadata carries no authorization endpoint")
)
