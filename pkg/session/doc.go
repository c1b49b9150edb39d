// Package session keeps per-visitor state on the server and identifies the
// visitor with a signed token cookie.
//
// A Manager ties a Store to the cookie. The request life-cycle is:
//
//	s, err := manager.Start(ctx, w, r) // load or create, write the cookie
//	s.Set("theme", "dark")
//	...
//	err = manager.Save(ctx, s)         // persist and extend the expiry
//
// Start never fails because of a bad cookie: a missing, forged or expired
// token simply yields a fresh anonymous session. Regenerate moves a session to
// a new token (call it on login to defeat session fixation) and Destroy drops
// it altogether (logout).
//
// # Stores
//
// MemoryStore keeps sessions in process and is the default. RedisStore keeps
// them in redis as JSON with a TTL matching the session expiry. Values stored
// in a session therefore have to be JSON friendly; use Decode or PullInto to
// read structured values back in a shape that does not depend on the store.
//
// # Flash values
//
// Pull and PullInto remove the value they return, which is how one-time
// values (validation errors, old form input) travel across a redirect.
package session
