package services_test

import (
	"errors"
	"strings"
)

var assertErr = errors.New("boom")

func errorsIs(err, target error) bool { return errors.Is(err, target) }

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
