/*
Package bulkorder contains the BulkOrder aggregate and its Assignment
entities.

A bulk order is an organizer's request to cater an event: a target quantity
split across per-chef assignments. Chefs confirm or reject their shares, and
the aggregate keeps the confirmed sum within the target at all times. When
the confirmed quantities reach the target and every assignment is answered,
the bulk order becomes fulfilled and a consolidated order can be linked to
it. Pending bulk orders whose deadline passes are cancelled by a background
sweep.
*/
package bulkorder
