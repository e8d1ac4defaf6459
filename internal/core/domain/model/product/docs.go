// Package product contains the catalog aggregate. A product carries a display
// name, a decimal unit price, and a non-negative stock count that is only
// mutated through stock reservation during order creation.
package product
