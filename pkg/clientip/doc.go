// Package clientip resolves the originating client address of an HTTP
// request.
//
// Forwarding headers are trivially spoofed, so a Resolver trusts none by
// default and reads the TCP peer from RemoteAddr. Deployments behind a proxy
// list the headers that proxy sets:
//
//	res := clientip.New("CF-Connecting-IP", "X-Forwarded-For")
//	r.Use(res.Middleware)
//	ip := clientip.FromContext(req.Context())
//
// Headers are tried in the given order. A list-valued header such as
// X-Forwarded-For yields its rightmost valid address, the one appended by
// the trusted proxy; entries to its left are client-supplied and ignored.
// Repeated header lines are read as one list. Invalid values are skipped
// and an empty string means no address could be found.
package clientip
