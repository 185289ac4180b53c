//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools are declared with the go.mod tool directive:
// - github.com/matryer/moq (mock generation, see go:generate lines in *_test.go)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migration work against migrations/)
