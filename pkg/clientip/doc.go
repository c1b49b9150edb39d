// Package clientip extracts the client address of a request, honouring the
// usual reverse proxy headers.
//
//	ip := clientip.FromRequest(r)
package clientip
