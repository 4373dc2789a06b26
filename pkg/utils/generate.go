package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== SESSION ====================

func GenerateSessionID() uuid.UUID {
	return uuid.New()
}

func ParseSessionID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// ==================== BOOKING REFERENCE ====================

// GenerateBookingReference creates a local booking reference with timestamp.
// Format: BOOK-YYYYMMDD-HHMMSS-NNNN
func GenerateBookingReference(now time.Time) string {
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("BOOK-%s-%s-%s", datePart, timePart, randomPart)
}
