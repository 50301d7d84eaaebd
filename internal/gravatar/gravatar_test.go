package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLNormalizesEmail(t *testing.T) {
	// Hash input must be trimmed and lowercased, so these are the same avatar.
	assert.Equal(t, URL("a@x.com"), URL("  A@X.COM  "))
}

func TestURLShape(t *testing.T) {
	// md5("a@x.com")
	assert.Equal(t,
		"https://www.gravatar.com/avatar/743173788aa9166801df2e18f0e7ff24?s=100&d=retro&r=g",
		URL("a@x.com"))
}

func TestSizedURL(t *testing.T) {
	assert.Contains(t, SizedURL("a@x.com", 40), "s=40")
}
