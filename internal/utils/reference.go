package utils

import "crypto/rand"

// referenceAlphabet deliberately omits easily confused characters
// (0/O, 1/I/L) since booking codes are read out over the phone.
const referenceAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// referenceLength is the length of generated booking codes; 10
// characters over a 31-symbol alphabet leave collisions to the
// database's unique key to catch.
const referenceLength = 10

// NewBookingReference returns a short human-facing booking code such
// as "K7Q2M9XW4R".
func NewBookingReference() (string, error) {
	buf := make([]byte, referenceLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, referenceLength)
	for i, b := range buf {
		out[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return string(out), nil
}
