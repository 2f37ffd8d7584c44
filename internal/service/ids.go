package service

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// generateID produces "<prefix>XXXXXXXX" where X is uppercase hex drawn
// from a v4 UUID. 32 bits of entropy per id; collisions within a partition
// silently overwrite, which is an accepted risk at this scale.
func generateID(prefix string) string {
	id := uuid.New()
	return prefix + strings.ToUpper(hex.EncodeToString(id[:4]))
}
