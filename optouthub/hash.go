package optouthub

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashEmailMD5 returns the lowercase hex MD5 of a normalized email address,
// the form the platform uses for hashed suppression lookups and exports.
// Normalization is trim plus lowercase.
func HashEmailMD5(email string) string {
	h := md5.Sum([]byte(normalizeEmail(email)))
	return hex.EncodeToString(h[:])
}

// HashEmailSHA256 is the SHA-256 variant of HashEmailMD5.
func HashEmailSHA256(email string) string {
	h := sha256.Sum256([]byte(normalizeEmail(email)))
	return hex.EncodeToString(h[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
