// Package common provides shared constants and sentinel errors used across
// the pythia module's packages.
//
// This is an internal package not intended for direct use by applications;
// it supports the implementation of the public pythia package and the
// cmd/ tools.
package common

import "errors"

// ErrInvalidParameter indicates a caller-supplied argument was
// structurally invalid (nil, empty, out of range) before any
// cryptographic work was attempted. Used by the ambient code (HKDF-based
// rotation helpers, batch entry validation) that sits outside the core
// package's own error taxonomy in pkg/pythia/errors.go.
var ErrInvalidParameter = errors.New("pythia: invalid parameter")
