package main

import (
	"testing"

	"github.com/google/uuid"

	"lockwatch/internal/lockout"
)

func TestBeginLockoutStartsCountdownForParseableMessage(t *testing.T) {
	m := newTestModel()
	cmd := m.beginLockout("Too many failed attempts. Account locked. Try again in 2 minute(s) and 5 second(s).")
	if cmd == nil {
		t.Fatal("expected a tick command for a parseable message")
	}
	if m.alert == nil || m.alert.cd == nil {
		t.Fatal("expected alert with live countdown")
	}
	if m.alert.cd.Total() != 125 {
		t.Fatalf("total = %d, want 125", m.alert.cd.Total())
	}
	if m.alert.category != alertLocked {
		t.Fatal("fresh alert must be in the locked category")
	}
}

func TestBeginLockoutFallsBackToStaticAlert(t *testing.T) {
	m := newTestModel()
	raw := "Account locked. Try again later."
	cmd := m.beginLockout(raw)
	if cmd != nil {
		t.Fatal("unparseable message must not schedule ticks")
	}
	if m.alert == nil || m.alert.cd != nil {
		t.Fatal("expected static alert without countdown")
	}
	if m.alert.text != raw {
		t.Fatalf("raw message must stay visible, got %q", m.alert.text)
	}
	// The static alert still gates the form.
	if !m.locked() {
		t.Fatal("static locked alert should gate submission")
	}
}

func TestBeginLockoutZeroSecondsDoesNotGate(t *testing.T) {
	m := newTestModel()
	cmd := m.beginLockout("Account locked. Try again in 0 second(s).")
	if cmd != nil {
		t.Fatal("zero-length lock must not start a countdown")
	}
	if m.alert == nil || m.alert.cd != nil {
		t.Fatal("expected countdown-free alert for zero-length lock")
	}
	// A lock that has already run out behaves like expiry: the alert shows
	// the unlocked notice and the form stays usable. There is no page
	// reload to clear a wedged alert, so gating here would be permanent.
	if m.alert.category != alertSuccess || m.alert.text != unlockedNotice {
		t.Fatalf("expected unlocked notice, got category=%d text=%q", m.alert.category, m.alert.text)
	}
	if m.locked() {
		t.Fatal("zero-length lock must not gate submission")
	}

	flowSetLoginFields(&m, "demo@example.com", "correct-horse")
	m = flowPress(t, m, "enter")
	if m.status != "Checking credentials..." {
		t.Fatal("submit should reach the responder after a zero-length lock")
	}
}

func TestCountdownTickWithStaleIDIsIgnored(t *testing.T) {
	m := newTestModel()
	m.beginLockout("Try again in 45 second(s).")
	remaining := m.alert.cd.Remaining()

	m = flowApplyMsg(t, m, countdownTickMsg{id: uuid.New()})
	if m.alert.cd.Remaining() != remaining {
		t.Fatal("tick with a stale id must not advance the countdown")
	}
}

func TestCountdownTickAdvancesAndReschedules(t *testing.T) {
	m := newTestModel()
	m.beginLockout("Try again in 45 second(s).")
	id := m.alert.id

	next, cmd := flowApplyMsgCmd(t, m, countdownTickMsg{id: id})
	if next.alert.cd.Remaining() != 44 {
		t.Fatalf("remaining = %d, want 44", next.alert.cd.Remaining())
	}
	if cmd == nil {
		t.Fatal("running countdown must reschedule the next tick")
	}
}

func TestFinalTickStopsRescheduling(t *testing.T) {
	m := newTestModel()
	m.beginLockout("Try again in 2 second(s).")
	id := m.alert.id

	m = flowApplyMsg(t, m, countdownTickMsg{id: id})
	next, cmd := flowApplyMsgCmd(t, m, countdownTickMsg{id: id})
	if cmd != nil {
		t.Fatal("terminal transition must not reschedule a tick")
	}
	if next.alert.cd.State() != lockout.StateExpired {
		t.Fatalf("state = %v, want expired", next.alert.cd.State())
	}
	if next.alert.category != alertSuccess {
		t.Fatal("alert must be recategorized at expiry")
	}
}
