package common

// AuthorizationHeader is the HTTP header used to carry the access token
// on outbound requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix is prepended to the access token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeader carries a client-generated id so individual requests can
// be correlated in logs on both sides.
const RequestIDHeader = "X-Request-Id"
