/*
Package services contains domain services: operations that span more than
one aggregate or need external read models to decide.

CheckoutGate validates a cart against the marketplace's checkout rules in a
fixed order, collects every violation instead of stopping at the first, and
prices the would-be order. DeliveryDispatcher picks the least loaded
on-shift delivery agent for a new delivery.
*/
package services
