// Package types holds the JSON envelopes every API response uses.
package types

// SuccessEnvelope wraps successful payloads so clients always unwrap
// the same top-level "data" key, whether the body is an entity, a
// list, or a generated report.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public error shape. Code carries a stable machine
// token such as VALIDATION_ERROR or NOT_FOUND; Details is only set for
// validation failures, where it lists the offending fields.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps APIError under a top-level "error" key.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
