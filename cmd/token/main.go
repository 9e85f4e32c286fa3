package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/mateovidal/crmbridge/config"
	"github.com/mateovidal/crmbridge/pkg/auth"
)

// Mints a service JWT for API access. Tokens are issued out-of-band; there
// is no user store in this service.
func main() {
	cfg := config.Load()

	userID := flag.Int("user-id", 1, "subject user id")
	email := flag.String("email", "ops@localhost", "subject email")
	role := flag.String("role", "admin", "subject role")
	hours := flag.Int("hours", cfg.JWTExpirationHours, "token lifetime in hours")
	flag.Parse()

	token, err := auth.GenerateJWT(*userID, *email, *role, cfg.JWTSecret, *hours)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(token)
}
