// Package order contains the order aggregate and its lifecycle rules: the
// linear status pipeline (Created, Delivery, Delivered), the line items owned
// by an order, and the business-day delivery estimation shared by creation
// and advancement.
package order
