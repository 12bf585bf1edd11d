package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
)

var codePattern = regexp.MustCompile(`^CERT-[0-9A-F]{12}-\d{6}$`)

func TestGenerateVerificationCodeFormat(t *testing.T) {
	code := GenerateVerificationCode(uuid.New(), uuid.New(), time.Now(), "salt")
	if !codePattern.MatchString(code) {
		t.Errorf("code %q does not match expected format", code)
	}
}

func TestGenerateVerificationCodeDeterministic(t *testing.T) {
	userID := uuid.New()
	attemptID := uuid.New()
	ts := time.Now()

	a := GenerateVerificationCode(userID, attemptID, ts, "salt")
	b := GenerateVerificationCode(userID, attemptID, ts, "salt")
	if a != b {
		t.Errorf("same inputs produced %q and %q", a, b)
	}
}

func TestGenerateVerificationCodeVariesByInput(t *testing.T) {
	userID := uuid.New()
	attemptID := uuid.New()
	ts := time.Now()

	base := GenerateVerificationCode(userID, attemptID, ts, "salt")
	cases := []struct {
		name string
		code string
	}{
		{"different user", GenerateVerificationCode(uuid.New(), attemptID, ts, "salt")},
		{"different attempt", GenerateVerificationCode(userID, uuid.New(), ts, "salt")},
		{"different timestamp", GenerateVerificationCode(userID, attemptID, ts.Add(time.Microsecond), "salt")},
		{"different salt", GenerateVerificationCode(userID, attemptID, ts, "outro")},
	}
	for _, tc := range cases {
		if tc.code == base {
			t.Errorf("%s produced the same code %q", tc.name, base)
		}
	}
}
