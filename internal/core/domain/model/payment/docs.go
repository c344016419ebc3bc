/*
Package payment contains the Payment aggregate and its Refund entities.

A payment is created in the pending status together with its order and moves
to completed or failed when the provider reports the outcome. Refunds are
requested against a completed payment and go through an approval step before
processing. Processing a refund is the only way a payment becomes refunded,
and the aggregate guarantees that processed refunds never add up to more than
the amount originally paid.
*/
package payment
