package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestParseBasicHeader(t *testing.T) {
	username, password, ok := ParseBasicHeader(header("alice", "hunter2"))
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
	assert.Equal(t, "hunter2", password)

	// only the first colon delimits
	username, password, ok = ParseBasicHeader(header("alice", "pass:with:colons"))
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
	assert.Equal(t, "pass:with:colons", password)

	for name, value := range map[string]string{
		"empty header":  "",
		"wrong scheme":  "Bearer abcdef",
		"no prefix":     base64.StdEncoding.EncodeToString([]byte("alice:hunter2")),
		"bad base64":    "Basic !!!not-base64!!!",
		"missing colon": "Basic " + base64.StdEncoding.EncodeToString([]byte("alicehunter2")),
	} {
		_, _, ok := ParseBasicHeader(value)
		assert.False(t, ok, name)
	}
}

func TestCredentialsCheck(t *testing.T) {
	creds := Credentials{Username: "testuser", Password: "testpass"}

	assert.True(t, creds.Check(header("testuser", "testpass")))

	for name, value := range map[string]string{
		"wrong password": header("testuser", "wrong"),
		"wrong username": header("wrong", "testpass"),
		"both wrong":     header("wrong", "wrong"),
		"empty header":   "",
		"wrong scheme":   "Bearer abcdef",
		"bad base64":     "Basic ***",
		"missing colon":  "Basic " + base64.StdEncoding.EncodeToString([]byte("testusertestpass")),
		"swapped fields": header("testpass", "testuser"),
	} {
		assert.False(t, creds.Check(value), name)
	}
}
