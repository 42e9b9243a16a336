// Package validation contains the logic for validating request data.
//
// The core is Validate: a pure function that checks a raw, untyped
// record against a caller-declared list of required fields and returns
// the normalized values. BindAndValidate adapts it to Echo requests and
// runs the `validator` struct tags of the typed payload afterwards.
package validation
