// scripts/gcal-auth/main.go
//
// Run once locally to authorize read-only Google Calendar access for the
// dashboard and write the token next to the service.
//
// Usage:
//   go run scripts/gcal-auth/main.go [-creds google-credentials.json] [-out token.json]

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"

	"cie-dashboard/pkg/gcalendar"
)

func main() {
	credsPath := flag.String("creds", "google-credentials.json", "OAuth desktop app credentials")
	tokenPath := flag.String("out", gcalendar.DefaultTokenPath, "where to write the token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := gcalendar.DesktopAuthConfig(data)
	if err != nil {
		log.Fatalf("%v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	authURL := config.AuthCodeURL("cie-dashboard", oauth2.AccessTypeOffline)
	fmt.Println("1. Open this URL and sign in with the account that owns the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		log.Fatalf("Failed to save token: %v", err)
	}

	fmt.Printf("\nToken saved to %s. Set google_calendar.credentials_path to %s and restart the service.\n", *tokenPath, *credsPath)
}
