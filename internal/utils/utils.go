package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const (
	maxJobNameLength = 255
)

// ValidJobName reports whether a string is usable as a job name.
// Names become URL path segments, so blanks and path separators are out.
func ValidJobName(name string) bool {
	if name == "" || len(name) > maxJobNameLength {
		return false
	}
	if strings.TrimSpace(name) != name {
		return false
	}
	return !strings.ContainsAny(name, "/\\")
}

// NewRandomID returns a random hex string, good enough for crumb values.
func NewRandomID() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
