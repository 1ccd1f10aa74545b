// Package util holds small generic helpers: pointer boxing for optional
// fields and API key masking for display.
package util
