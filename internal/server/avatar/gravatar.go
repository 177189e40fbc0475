// Package avatar derives profile image references from email addresses.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"
)

// Func maps an email address to a profile image reference. It must be pure:
// the same email always gives the same reference.
type Func func(email string) string

// Gravatar options used for every registered account: 200px, PG rated,
// "mystery man" placeholder when the address has no image.
var defaultOptions = url.Values{
	"s": {"200"},
	"r": {"pg"},
	"d": {"mm"},
}

const gravatarBase = "https://www.gravatar.com/avatar/"

// Gravatar returns the gravatar URL for email. The address is trimmed and
// lower-cased before hashing, as gravatar requires.
func Gravatar(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return gravatarBase + hex.EncodeToString(sum[:]) + "?" + defaultOptions.Encode()
}
