// Package ids generates the time-derived record identifiers used across
// collections, e.g. "order-1736172000000-1a2b3c4d".
package ids

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// New returns a unique id with the given prefix. The timestamp keeps ids
// sortable by creation time; the uuid suffix keeps them unique even when
// two records are created within the same millisecond.
func New(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
