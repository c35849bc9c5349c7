package utils

import (
	"fmt"
	"os"
)

// GetJWTSecret returns the HMAC secret used to sign and verify access tokens.
// ACCESS_TOKEN_SECRET takes precedence, JWT_SECRET is accepted as an alias.
func GetJWTSecret() []byte {
	if secret := os.Getenv("ACCESS_TOKEN_SECRET"); secret != "" {
		return []byte(secret)
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	fmt.Println("WARNING: ACCESS_TOKEN_SECRET environment variable not set.")
	return []byte("default-insecure-secret-only-for-development")
}
