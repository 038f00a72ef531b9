package domain

import "errors"

// ErrSourceRead is returned by repo and service functions when the booth
// source file cannot be opened or parsed. No partial results accompany it.
// Handlers should map this to HTTP 500.
var ErrSourceRead = errors.New("source read error")

// ErrValidation is returned when a request is missing required input
// (e.g. the access token or page ID of a photo lookup).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrUpstream is returned by the Graph client when the external API is
// unreachable or answers with a non-2xx status.
var ErrUpstream = errors.New("upstream error")

// ErrFetch is returned by the data client when GET /data fails for any
// reason: transport error, non-2xx status, or an undecodable body.
// Callers treat it as total failure and keep an empty result set.
var ErrFetch = errors.New("fetch error")
