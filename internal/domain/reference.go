package domain

import (
	"fmt"
	"math/rand"
	"time"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOfferReference synthesizes an offer reference number for records that
// arrive without one. The millisecond timestamp plus six random base36
// characters makes collisions unlikely, and the unique index catches the
// rest.
func NewOfferReference(prefix string) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), string(suffix))
}
