// Package worldclock implements a minimal user account service for a world
// clock application: registration, password login, bearer token sessions, and
// per-account display preferences (tracked time zones, 12 hour clock, date
// format).
//
// The package is transport aware but transport agnostic: the core types
// (TokenService, Auther, UserProvider, PreferenceService, Users) operate on
// plain values and context, while http.go and http_controller.go expose the
// JSON surface through go-router so the same wiring runs on Fiber or any
// other supported adapter.
//
// Preference semantics:
//   - Time zones are an ordered list with no duplicates. Adding a zone that
//     is already tracked fails with ErrTimeZoneExists; removing an untracked
//     zone fails with ErrTimeZoneNotFound. These are presence guarded
//     mutations, not set unions.
//   - The boolean toggles are idempotent writes; repeating one is a no-op.
//
// Tokens bind {id, email} claims to a process wide HMAC secret. By default
// they carry no expiry claim; configure a non-zero token expiration to issue
// expiring tokens.
package worldclock
