package odf

import "errors"

// Errors returned by the onset detection function engine.
var (
	ErrNotConfigured = errors.New("odf: function not configured")
	ErrBufferLength  = errors.New("odf: buffer length mismatch")
)
