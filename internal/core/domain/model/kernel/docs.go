// Package kernel provides the value objects shared by the menu and order aggregates.
//
// The package includes:
//   - UUID: the identifier of menu items and orders; the zero value is invalid
//   - Money: a non-negative decimal amount kept at cent precision
//
// Both are immutable and safe for concurrent use.
package kernel
