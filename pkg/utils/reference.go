package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateReferenceNo generates a short human-readable reference such as
// "NJV-1A2B3C4D" for a new engagement.
func GenerateReferenceNo(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}
