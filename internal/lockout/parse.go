// Package lockout implements the account-lockout countdown core: parsing
// the server-rendered remaining-time message and the tick-driven state
// machine behind the countdown widget.
package lockout

import (
	"regexp"
	"strconv"
)

// MatchKind identifies which duration shape a message matched.
type MatchKind int

const (
	// MatchNone means no duration was found; the widget must not activate
	// and the raw message stays visible as-is.
	MatchNone MatchKind = iota
	// MatchSecondsOnly matched "<S> second(s)".
	MatchSecondsOnly
	// MatchMinutesSeconds matched "<M> minute(s) and <S> second(s)".
	MatchMinutesSeconds
)

// ParseResult is the typed outcome of scanning a lockout message.
type ParseResult struct {
	Kind    MatchKind
	Seconds int
}

// The server renders remaining time in one of two shapes, embedded anywhere
// in the sentence. The minutes form must win over the seconds form, or
// "2 minute(s) and 5 second(s)" would parse as 5 seconds.
var (
	minSecPattern  = regexp.MustCompile(`(\d+)\s*minute\(s\)\s*and\s*(\d+)\s*second\(s\)`)
	secOnlyPattern = regexp.MustCompile(`(\d+)\s*second\(s\)`)
)

// ParseDuration scans msg for a rendered remaining-time duration and
// returns the total in whole seconds. A message matching neither shape
// yields MatchNone, which is the designed fallback, not an error.
func ParseDuration(msg string) ParseResult {
	if m := minSecPattern.FindStringSubmatch(msg); m != nil {
		mins, errM := strconv.Atoi(m[1])
		secs, errS := strconv.Atoi(m[2])
		if errM == nil && errS == nil {
			return ParseResult{Kind: MatchMinutesSeconds, Seconds: mins*60 + secs}
		}
	}
	if m := secOnlyPattern.FindStringSubmatch(msg); m != nil {
		if secs, err := strconv.Atoi(m[1]); err == nil {
			return ParseResult{Kind: MatchSecondsOnly, Seconds: secs}
		}
	}
	return ParseResult{Kind: MatchNone}
}
