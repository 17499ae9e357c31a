package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckRequired(t *testing.T) {
	require.False(t, Check(KindRequired, "", "", 0).Valid)
	require.False(t, Check(KindRequired, "   ", "", 0).Valid)
	require.Equal(t, "This field is required", Check(KindRequired, "", "", 0).Message)
	require.True(t, Check(KindRequired, "jask", "", 0).Valid)
}

func TestCheckUsername(t *testing.T) {
	require.Equal(t, "This field is required", Check(KindUsername, "", "", 0).Message)
	require.Equal(t, "Username must be between 3 and 20 characters long", Check(KindUsername, "ab", "", 0).Message)
	require.Equal(t, "Username must be between 3 and 20 characters long", Check(KindUsername, strings.Repeat("x", 21), "", 0).Message)
	require.True(t, Check(KindUsername, "abc", "", 0).Valid)
	require.True(t, Check(KindUsername, strings.Repeat("x", 20), "", 0).Valid)
}

func TestCheckEmail(t *testing.T) {
	cases := []struct {
		value string
		valid bool
		msg   string
	}{
		{"", false, "Email is required"},
		{"  ", false, "Email is required"},
		{"nope", false, "Invalid email address"},
		{"nope@", false, "Invalid email address"},
		{"@nope.com", false, "Invalid email address"},
		{"a b@x.com", false, "Invalid email address"},
		{"no-tld@host", false, "Invalid email address"},
		{"user@example.com", true, ""},
		{"first.last+tag@mail.example.org", true, ""},
	}
	for _, tc := range cases {
		got := Check(KindEmail, tc.value, "", 0)
		require.Equal(t, tc.valid, got.Valid, "value %q", tc.value)
		require.Equal(t, tc.msg, got.Message, "value %q", tc.value)
	}
}

func TestCheckPassword(t *testing.T) {
	require.Equal(t, "Password is required", Check(KindPassword, "", "", 0).Message)
	require.Equal(t, "Password must be at least 8 characters long", Check(KindPassword, "short12", "", 0).Message)
	require.True(t, Check(KindPassword, "longenough", "", 0).Valid)
	require.True(t, Check(KindPassword, "exactly8", "", 0).Valid)
}

func TestCheckPasswordConfiguredMinimum(t *testing.T) {
	// A raised minimum rejects passwords the default would accept.
	got := Check(KindPassword, "tencharpwd", "", 12)
	require.False(t, got.Valid)
	require.Equal(t, "Password must be at least 12 characters long", got.Message)
	require.True(t, Check(KindPassword, "twelvecharpwd", "", 12).Valid)

	// Zero and negative fall back to the default minimum.
	require.False(t, Check(KindPassword, "short12", "", 0).Valid)
	require.False(t, Check(KindPassword, "short12", "", -1).Valid)
	require.True(t, Check(KindPassword, "exactly8", "", -1).Valid)
}

func TestCheckConfirm(t *testing.T) {
	require.Equal(t, "Please confirm your password", Check(KindConfirm, "", "whatever", 0).Message)
	require.Equal(t, "Passwords must match", Check(KindConfirm, "abcdefgh", "abcdefg", 0).Message)
	require.True(t, Check(KindConfirm, "abcdefgh", "abcdefgh", 0).Valid)
}

func TestSuggestDomain(t *testing.T) {
	got, ok := SuggestDomain("user@gmial.com")
	require.True(t, ok)
	require.Equal(t, "user@gmail.com", got)

	got, ok = SuggestDomain("user@hotmial.com")
	require.True(t, ok)
	require.Equal(t, "user@hotmail.com", got)

	// Exact known domains never get a suggestion.
	_, ok = SuggestDomain("user@gmail.com")
	require.False(t, ok)

	// Unrelated domains are left alone.
	_, ok = SuggestDomain("user@example.com")
	require.False(t, ok)

	// Malformed input degrades to no suggestion.
	_, ok = SuggestDomain("not-an-email")
	require.False(t, ok)
	_, ok = SuggestDomain("trailing@")
	require.False(t, ok)
}
