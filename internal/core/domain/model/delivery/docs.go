/*
Package delivery contains the Delivery aggregate.

A delivery is created unassigned together with its order and moves through
assigned and picked_up to delivered, with cancellation possible at any point
before completion. Every transition is validated against the parent order's
status so the delivery can never run ahead of the kitchen, and the aggregate
records the timestamp of each step.
*/
package delivery
