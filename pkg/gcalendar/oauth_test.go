package gcalendar_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"cie-dashboard/pkg/gcalendar"
)

const desktopCreds = `{
	"installed": {
		"client_id": "abc.apps.googleusercontent.com",
		"client_secret": "shh",
		"redirect_uris": ["http://localhost"],
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token"
	}
}`

func TestDesktopAuthConfig(t *testing.T) {
	cfg, err := gcalendar.DesktopAuthConfig([]byte(desktopCreds))
	if err != nil {
		t.Fatalf("DesktopAuthConfig: %v", err)
	}
	if cfg.ClientID != "abc.apps.googleusercontent.com" {
		t.Errorf("client id = %q", cfg.ClientID)
	}
	if len(cfg.Scopes) != 1 || !strings.HasSuffix(cfg.Scopes[0], "calendar.readonly") {
		t.Errorf("scopes = %v, want read-only calendar", cfg.Scopes)
	}

	if _, err := gcalendar.DesktopAuthConfig([]byte(`{"nope":true}`)); err == nil {
		t.Errorf("expected error for unknown credentials")
	}
}

func TestSaveToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	tok := &oauth2.Token{AccessToken: "a", RefreshToken: "r", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}

	if err := gcalendar.SaveToken(path, tok); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"refresh_token":"r"`) {
		t.Errorf("token file = %s", data)
	}
}
