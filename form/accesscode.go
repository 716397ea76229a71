package form

import (
	"context"
	"crypto/rand"
	"fmt"
)

const accessCodeLength = 6
const accessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const maxAccessCodeAttempts = 5

func newAccessCode() (string, error) {
	buf := make([]byte, accessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = accessCodeAlphabet[int(b)%len(accessCodeAlphabet)]
	}
	return string(buf), nil
}

// assignAccessCode generates a code and verifies it is not already in
// use, retrying a bounded number of times. Collisions are checked
// against all forms, not just active ones, so that reactivating a form
// cannot surface a duplicate code.
func (s *FormSrvc) assignAccessCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAccessCodeAttempts; attempt++ {
		code, err := newAccessCode()
		if err != nil {
			return "", err
		}
		existing, err := s.repo.GetByCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("error checking access code: %w", err)
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", errAccessCodeAttemptsExhausted
}

var errAccessCodeAttemptsExhausted = fmt.Errorf(
	"exhausted %d access code attempts", maxAccessCodeAttempts)
