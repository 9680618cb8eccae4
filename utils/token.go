package utils

import (
	"math/rand"
)

const inviteCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateInviteCode returns a short uppercase code of the given length,
// e.g. "X4K9QZ" for team invites.
func GenerateInviteCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		code[i] = inviteCharset[rand.Intn(len(inviteCharset))]
	}
	return string(code)
}
