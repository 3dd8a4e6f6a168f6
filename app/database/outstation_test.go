package database

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPinAuthorized(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	stored := string(hash)

	tests := []struct {
		name     string
		supplied string
		want     bool
	}{
		{"matching pin", "1234", true},
		{"master override", "9999", true},
		{"wrong pin", "0000", false},
		{"empty pin", "", false},
		{"partial pin", "123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pinAuthorized(stored, tt.supplied, "9999"); got != tt.want {
				t.Errorf("pinAuthorized(stored, %q, \"9999\") = %v, want %v", tt.supplied, got, tt.want)
			}
		})
	}
}

func TestPinAuthorizedMasterOverrideIsConfigurable(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("4321"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	if pinAuthorized(string(hash), "9999", "7777") {
		t.Error("default master pin accepted after override was reconfigured")
	}
	if !pinAuthorized(string(hash), "7777", "7777") {
		t.Error("configured master pin rejected")
	}
}
