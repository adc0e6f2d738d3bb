package habit

import (
	"time"

	"github.com/google/uuid"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now, for callers that do
// not inject their own.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type uuidGenerator struct{}

// NewUUIDGenerator returns an IDGenerator minting time-ordered v7 UUIDs,
// with a v4 fallback when the entropy source misbehaves.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
