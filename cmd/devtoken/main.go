// Command devtoken prints a bearer token for local testing of the API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"festx/config"
	"festx/internal/adapters/auth"
	"festx/internal/domain"
)

func main() {
	userID := flag.String("user", "", "user ID placed in the sub claim (required)")
	email := flag.String("email", "", "email claim")
	role := flag.String("role", string(domain.RoleStudent), "role: student, organizer or admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "devtoken: -user is required")
		flag.Usage()
		os.Exit(2)
	}
	if !domain.Role(*role).Valid() {
		fmt.Fprintf(os.Stderr, "devtoken: unknown role %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(*userID, *email, []string{*role}, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
