// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error categories. Every failure in a run wraps exactly one of these and
// terminates the run; callers test with errors.Is.
var (
	// ErrConfig marks a missing or malformed topic list, config file, or credential.
	ErrConfig = errors.New("configuration error")

	// ErrProtocol marks a model reply that names no action, an unknown action,
	// or arguments that do not match the action's shape.
	ErrProtocol = errors.New("protocol error")

	// ErrTransport marks a network or HTTP-status failure calling the model API.
	ErrTransport = errors.New("transport error")

	// ErrIO marks a failure reading or writing an output file.
	ErrIO = errors.New("io error")

	// ErrMarkerNotFound is returned when a README has no topics block.
	ErrMarkerNotFound = errors.New("topics marker region not found")
)
