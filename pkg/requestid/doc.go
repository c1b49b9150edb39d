// Package requestid tags requests with a correlation id.
//
// Middleware reads X-Request-ID, keeps it when it is well formed (at most 128
// characters of letters, digits, '-' and '_') and otherwise generates a UUID.
// The id is stored in the request context, echoed in the response header and
// picked up by the logger through LogExtractor.
package requestid
