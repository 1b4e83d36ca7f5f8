// Package api implements the SkillExchange REST client: a request pipeline
// that attaches the stored access token to every call, transparently
// refreshes an expired session on 401 and retries the original request
// exactly once, plus typed wrappers for every remote operation.
//
// Every endpoint answers with a uniform envelope {success, message, data?}.
// Operations return decoded data on success; a success:false reply surfaces
// as *Error, transport problems as ErrUnavailable, and an unrecoverable
// session as ErrSessionExpired (after local session state has been wiped).
package api
