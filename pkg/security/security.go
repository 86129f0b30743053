package security

import (
	"crypto/sha256"
	"fmt"

	"github.com/google/uuid"
)

func HashPassword(password string, salt string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(salt+password)))
}

// AnonymousUserId stands in for user identity on anonymous review
// submissions. It satisfies the not-null user_id column and nothing more.
func AnonymousUserId() uuid.UUID {
	return uuid.New()
}
