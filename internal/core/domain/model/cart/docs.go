// Package cart implements the customer's pre-checkout basket aggregate.
// A cart collects priced lines from chef menus; it is read by the checkout
// gate during validation and cleared only when a checkout commits.
package cart
