// Package services provides domain services for rules that span the menu and
// order aggregates and do not belong to either one alone.
//
// The package includes:
//   - OrderPricer: prices requested order lines from the current catalog and
//     rejects lines for menu items that are switched off
package services
