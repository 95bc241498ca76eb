// Package checkapi exposes the predicate registry and the card validator as a
// small JSON HTTP API built on chi.
//
//	GET  /healthz                 liveness probe, "ALIVE"
//	GET  /readyz                  readiness probe over WithReadinessChecks
//	GET  /v1/predicates           {"predicates": ["alphaWord", ...]}
//	POST /v1/predicates/{name}    {"value": <any JSON>} -> {"predicate", "result"}
//	POST /v1/cards                {"number": "..."} -> {"valid", "issuer", "issuers"}
//
// Unknown predicate names answer 404, malformed bodies 400 and request
// validation failures 422 with per-field errors. Card numbers are masked
// before they are logged.
//
// WithRateLimiter puts a per-client token bucket in front of the /v1 routes;
// exhausted clients get 429 with a Retry-After header. Client addresses come
// from the Resolver passed to WithClientIP.
package checkapi
