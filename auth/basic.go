package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"
)

const basicSchemePrefix = "Basic "

// Credentials is a static username/password pair. It is configuration,
// not runtime state: the bridge compares every inbound request against
// exactly one pair.
//
// Note: a single static pair is suitable for dev/test deployments only;
// anything that needs real authentication should sit behind a proper
// identity provider.
type Credentials struct {
	Username string
	Password string
}

// ParseBasicHeader splits a raw Authorization header value into its
// username and password components. The header must use the Basic
// scheme and carry valid base64 encoding a "user:pass" string; only
// the first colon delimits, so passwords may contain colons. Any
// malformed input reports ok=false rather than an error.
func ParseBasicHeader(header string) (username, password string, ok bool) {
	if !strings.HasPrefix(header, basicSchemePrefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, basicSchemePrefix))
	if err != nil {
		return "", "", false
	}

	pair := strings.SplitN(string(decoded), ":", 2)
	if len(pair) != 2 {
		return "", "", false
	}

	return pair[0], pair[1], true
}

// Check reports whether the given Authorization header value carries
// exactly the configured credential pair. Malformed headers are a
// deny, never an error.
func (c Credentials) Check(header string) bool {
	username, password, ok := ParseBasicHeader(header)
	if !ok {
		return false
	}

	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username))
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password))

	return userMatch == 1 && passMatch == 1
}
