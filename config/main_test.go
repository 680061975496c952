package config

import (
	"fmt"
	"os"
	"testing"
)

// TestMain guards the config package tests: they must run with
// GO_ENV=test so Load never picks up a real .env by accident.
func TestMain(m *testing.M) {
	if env := os.Getenv("GO_ENV"); env != "test" {
		fmt.Fprintf(os.Stderr, "config tests must run with GO_ENV=test (got %q)\n", env)
		fmt.Fprintln(os.Stderr, "run: GO_ENV=test go test ./...")
		os.Exit(1)
	}

	os.Exit(m.Run())
}
