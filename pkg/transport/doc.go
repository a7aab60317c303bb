// Package transport implements the wire contract between a form and its
// endpoint: a JSON POST whose 2xx responses mean success and whose other
// responses may carry an error payload of the shape
//
//	{"message": "...", "errors": {"field": "message", ...}}
//
// Either key may be absent. Failures that happen before a response arrives
// are reported as *ConnectionError so callers can tell "the server rejected
// the input" apart from "the server could not be reached".
package transport
