// Package gravatar builds avatar image URLs for commenters from their email
// address, following the gravatar.com URL scheme.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	defaultSize   = 100
	defaultStyle  = "retro"
	defaultRating = "g"
)

// URL returns the avatar URL for an email. Gravatar hashes the trimmed,
// lowercased address.
func URL(email string) string {
	return SizedURL(email, defaultSize)
}

func SizedURL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf(
		"https://www.gravatar.com/avatar/%s?s=%d&d=%s&r=%s",
		hex.EncodeToString(sum[:]), size, defaultStyle, defaultRating,
	)
}
