package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InvalidateToken blacklists a token until its refresh window closes.
func InvalidateToken(db *redis.Client, tokenString string) error {
	_, err := db.Set(context.Background(), tokenString, true, 24*time.Hour).Result()
	if err != nil {
		return err
	}

	return nil
}

// IsTokenValid reports whether a token has not been blacklisted.
func IsTokenValid(db *redis.Client, tokenString string) bool {
	_, err := db.Get(context.Background(), tokenString).Result()
	if err == redis.Nil {
		// Token is not in the blacklist, so it's valid
		return true
	}
	if err != nil {
		log.Printf("Error while checking blacklist: %s", err)
		return false
	}

	return false
}

// GenerateSecureToken makes a random hex token for password resets.
func GenerateSecureToken(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return ""
	}

	return hex.EncodeToString(b)
}
