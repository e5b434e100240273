// Package api provides the REST surface for the configuration store.
//
// All endpoints answer HTTP 200 with a uniform envelope:
//
//	{
//	  "isSuccess": true,
//	  "data": { /* payload */ },
//	  "error": null
//	}
//
// Domain failures (environment gate, path policy, not-found, parse errors)
// set isSuccess to false and carry the message in "error"; the transport
// layer does not map them to non-200 status codes. Only transport-level
// problems (malformed body framing, panics) use non-200 codes.
package api
