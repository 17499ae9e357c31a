package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lockwatch/internal/config"
	"lockwatch/internal/lockout"
	"lockwatch/internal/validate"
)

func main() {
	check := flag.Bool("check", false, "run the non-TUI self-check and exit")
	writeConfig := flag.Bool("write-config", false, "write the current config to disk and exit")
	flag.Parse()

	if *check {
		if err := runCheckHarness(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "check failed:", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if *writeConfig {
		if err := config.Save(cfg); err != nil {
			fmt.Fprintln(os.Stderr, "write config:", err)
			os.Exit(1)
		}
		return
	}

	// A broken bindings file falls back to defaults; never fatal.
	bindings, _ := loadKeybindings()

	p := tea.NewProgram(newModel(cfg, newKeyMap(bindings)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

// runCheckHarness executes a non-TUI verification pass over the countdown
// core, the validators, and the responder round trip, printing one line
// per check. The final line carries check_status_err for scripts.
func runCheckHarness(w io.Writer) error {
	fail := func(format string, args ...any) error {
		fmt.Fprintf(w, "check_status_err=true\n")
		return fmt.Errorf(format, args...)
	}

	res := lockout.ParseDuration("2 minute(s) and 5 second(s)")
	fmt.Fprintf(w, "check_parse_minutes_seconds=%d\n", res.Seconds)
	if res.Kind != lockout.MatchMinutesSeconds || res.Seconds != 125 {
		return fail("parse minutes+seconds: got kind=%v seconds=%d", res.Kind, res.Seconds)
	}

	res = lockout.ParseDuration("45 second(s)")
	fmt.Fprintf(w, "check_parse_seconds=%d\n", res.Seconds)
	if res.Kind != lockout.MatchSecondsOnly || res.Seconds != 45 {
		return fail("parse seconds: got kind=%v seconds=%d", res.Kind, res.Seconds)
	}

	if got := lockout.ParseDuration("try again later"); got.Kind != lockout.MatchNone {
		return fail("parse garbage: got kind=%v", got.Kind)
	}
	fmt.Fprintf(w, "check_parse_unmatched=ok\n")

	cd, err := lockout.Start(125)
	if err != nil {
		return fail("start countdown: %v", err)
	}
	for i := 0; i < 125; i++ {
		cd.Tick()
	}
	fmt.Fprintf(w, "check_countdown_state=%s percent=%d\n", cd.State(), cd.Percent())
	if cd.State() != lockout.StateExpired || cd.Remaining() != 0 || cd.Percent() != 100 {
		return fail("countdown after 125 ticks: state=%v remaining=%d", cd.State(), cd.Remaining())
	}
	cd.Tick() // terminal state must absorb the stray tick
	if cd.Remaining() != 0 {
		return fail("expired countdown decremented to %d", cd.Remaining())
	}

	if r := validate.Check(validate.KindPassword, "short", "", 0); r.Valid {
		return fail("short password accepted")
	}
	if r := validate.Check(validate.KindEmail, "user@example.com", "", 0); !r.Valid {
		return fail("valid email rejected: %s", r.Message)
	}
	fmt.Fprintf(w, "check_validators=ok\n")

	auth := newResponder(config.DemoConfig{
		Email: "demo@example.com", Password: "correct-horse",
		MaxAttempts: 5, LockoutSeconds: 125,
	})
	var last authResultMsg
	for i := 0; i < 5; i++ {
		last = auth.Attempt("demo@example.com", "wrong")
	}
	if last.outcome != authLocked {
		return fail("responder did not lock after 5 failures: %v", last.outcome)
	}
	round := lockout.ParseDuration(last.message)
	fmt.Fprintf(w, "check_responder_lock_seconds=%d\n", round.Seconds)
	if round.Kind == lockout.MatchNone || round.Seconds != 125 {
		return fail("responder lock message did not round-trip: %q", last.message)
	}

	fmt.Fprintf(w, "check_status_err=false\n")
	return nil
}
