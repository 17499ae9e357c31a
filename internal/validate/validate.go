// Package validate holds the client-side field checks for the login and
// registration forms. These mirror the server's rules; the server remains
// authoritative and re-validates everything.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Kind selects which rule set applies to a field value.
type Kind int

const (
	KindRequired Kind = iota
	KindUsername
	KindEmail
	KindPassword
	KindConfirm
)

// Result reports whether a value passed and, if not, the message to show
// under the field.
type Result struct {
	Valid   bool
	Message string
}

// MinPasswordLen is the server's default minimum; deployments may raise it
// via config, so Check takes the effective minimum per call.
const MinPasswordLen = 8

// Username length bounds, matching the server's registration rules.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 20
)

// Deliberately loose: the server does the real address validation, this
// only catches obvious slips before a round trip.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Check validates value under kind. companion is only consulted for
// KindConfirm, where it holds the password the confirmation must equal.
// minPassword is the configured password minimum; zero or negative falls
// back to MinPasswordLen.
func Check(kind Kind, value, companion string, minPassword int) Result {
	if minPassword <= 0 {
		minPassword = MinPasswordLen
	}
	switch kind {
	case KindRequired:
		if strings.TrimSpace(value) == "" {
			return invalid("This field is required")
		}
	case KindUsername:
		if strings.TrimSpace(value) == "" {
			return invalid("This field is required")
		}
		if n := len(value); n < UsernameMinLen || n > UsernameMaxLen {
			return invalid(fmt.Sprintf("Username must be between %d and %d characters long", UsernameMinLen, UsernameMaxLen))
		}
	case KindEmail:
		if strings.TrimSpace(value) == "" {
			return invalid("Email is required")
		}
		if !emailPattern.MatchString(value) {
			return invalid("Invalid email address")
		}
	case KindPassword:
		if value == "" {
			return invalid("Password is required")
		}
		if len(value) < minPassword {
			return invalid(fmt.Sprintf("Password must be at least %d characters long", minPassword))
		}
	case KindConfirm:
		if value == "" {
			return invalid("Please confirm your password")
		}
		if value != companion {
			return invalid("Passwords must match")
		}
	}
	return Result{Valid: true}
}

func invalid(msg string) Result {
	return Result{Valid: false, Message: msg}
}

// Mail providers common enough that a near-miss is almost certainly a typo.
var knownDomains = []string{
	"gmail.com",
	"googlemail.com",
	"hotmail.com",
	"outlook.com",
	"yahoo.com",
	"icloud.com",
	"proton.me",
}

// SuggestDomain proposes a corrected address when the mail domain is a
// near-miss of a well-known provider (edit distance 1 or 2). It is an
// advisory hint only; a suggestion never fails validation.
func SuggestDomain(email string) (string, bool) {
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return "", false
	}
	domain := strings.ToLower(email[at+1:])
	best := ""
	bestDist := 3
	for _, known := range knownDomains {
		if domain == known {
			return "", false
		}
		if d := levenshtein.ComputeDistance(domain, known); d < bestDist {
			best = known
			bestDist = d
		}
	}
	if best == "" {
		return "", false
	}
	return email[:at+1] + best, true
}
