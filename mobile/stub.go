//go:build !mobile

// Package mobile is the ebitenmobile binding entry point. Desktop builds only
// see this stub; the binding itself needs -tags mobile.
package mobile

// Dummy keeps the package exported for ebitenmobile.
func Dummy() {}
