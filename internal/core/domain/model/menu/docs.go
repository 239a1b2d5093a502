// Package menu holds the catalog aggregate: menu items with a category, a price and
// an availability flag that order creation consults.
package menu
