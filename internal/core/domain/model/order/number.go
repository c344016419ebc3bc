package order

import (
	"fmt"

	"github.com/google/uuid"
)

// NewNumber generates a human-facing order number of the form
// ORD-XXXXXXXX, eight uppercase hex characters. Uniqueness is backed by the
// unique constraint on the orders table; the random width makes collisions
// a retry case, not a design concern.
func NewNumber() string {
	id := uuid.New()
	return fmt.Sprintf("ORD-%X", id[:4])
}
