package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateBookingRef creates a human-readable booking reference.
func GenerateBookingRef() string {
	now := time.Now()

	// Format: PAW-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("PAW-%s-%s-%s", datePart, timePart, randomPart)
}
