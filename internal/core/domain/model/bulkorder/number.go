package bulkorder

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// NewNumber generates a human-facing bulk order number of the form
// BULK-NNNNNN, six decimal digits. Uniqueness is backed by the unique
// constraint on the bulk orders table.
func NewNumber() string {
	id := uuid.New()
	return fmt.Sprintf("BULK-%06d", binary.BigEndian.Uint32(id[:4])%1_000_000)
}
