package interact

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpticalFlyer/trellis/event"
	"github.com/OpticalFlyer/trellis/geom"
)

func TestNewTogglableStateCount(t *testing.T) {
	for _, n := range []int{-3, 0, 1} {
		if _, err := NewTogglable(newManager(), fixedElement{}, nil, n, 0); !errors.Is(err, ErrStateCount) {
			t.Errorf("numberOfStates=%d: got %v; want ErrStateCount", n, err)
		}
	}
}

func TestNewTogglableClampsStart(t *testing.T) {
	tests := []struct {
		start, want int
	}{
		{start: -4, want: 0},
		{start: 1, want: 1},
		{start: 9, want: 2},
	}
	for _, tt := range tests {
		tg, err := NewTogglable(newManager(), fixedElement{}, nil, 3, tt.start)
		if err != nil {
			t.Fatal(err)
		}
		if got := tg.State(); got != tt.want {
			t.Errorf("start %d: got state %d; want %d", tt.start, got, tt.want)
		}
	}
}

func TestTogglableTriggerCycles(t *testing.T) {
	m := newManager()
	tg, err := NewTogglable(m, fixedElement{}, nil, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	fired := make([]*int, tg.NumberOfStates())
	for i := range fired {
		ev, _ := tg.StateEvent(i)
		fired[i] = counter(m, ev)
	}

	var got []int
	for i := 0; i < 3; i++ {
		got = append(got, tg.Trigger())
	}
	if diff := cmp.Diff([]int{1, 2, 0}, got); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
	for i, n := range fired {
		if *n != 1 {
			t.Errorf("state %d event fired %d times; want 1", i, *n)
		}
	}
}

func TestTogglableEventOrder(t *testing.T) {
	m := newManager()
	tg, err := NewTogglable(m, fixedElement{}, nil, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	var calls []string
	tg.OnClick(0, event.Action(func() { calls = append(calls, "click") }))
	for i := 0; i < 4; i++ {
		name := []string{"s0", "s1", "s2", "s3"}[i]
		if _, ok := tg.OnState(i, 0, event.Action(func() { calls = append(calls, name) })); !ok {
			t.Fatalf("OnState(%d) failed", i)
		}
	}

	tg.Trigger()
	if diff := cmp.Diff([]string{"s1", "click"}, calls); diff != "" {
		t.Errorf("Trigger order mismatch (-want +got):\n%s", diff)
	}

	calls = nil
	got := tg.CustomTrigger(func(current int) int { return current + 10 })
	if got != 3 {
		t.Errorf("CustomTrigger clamped to %d; want 3", got)
	}
	if diff := cmp.Diff([]string{"click", "s3"}, calls); diff != "" {
		t.Errorf("CustomTrigger order mismatch (-want +got):\n%s", diff)
	}

	calls = nil
	if got := tg.CustomTrigger(func(int) int { return -1 }); got != 0 {
		t.Errorf("CustomTrigger clamped to %d; want 0", got)
	}
	if diff := cmp.Diff([]string{"click", "s0"}, calls); diff != "" {
		t.Errorf("CustomTrigger order mismatch (-want +got):\n%s", diff)
	}
}

func TestTogglableActiveTrigger(t *testing.T) {
	m := newManager()
	p := &pointer{100, 100}
	tg, err := NewTogglable(m, fixedElement(geom.MustNew(0, 0, 10, 10)), p, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tg.ActiveTrigger() || tg.State() != 0 {
		t.Error("trigger outside should not toggle")
	}
	p.x, p.y = 5, 5
	if !tg.ActiveTrigger() || tg.State() != 1 {
		t.Errorf("trigger inside should toggle; state = %d", tg.State())
	}
	tg.Deactivate()
	if tg.PassiveTrigger() || tg.State() != 1 {
		t.Error("deactivated toggle should not change")
	}
	tg.Activate()
	if !tg.PassiveTrigger() || tg.State() != 0 {
		t.Errorf("passive trigger should toggle; state = %d", tg.State())
	}
}

func TestTogglableSetState(t *testing.T) {
	m := newManager()
	tg, err := NewTogglable(m, fixedElement{}, nil, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	ev, _ := tg.StateEvent(2)
	fired := counter(m, ev)
	if got := tg.SetState(7); got != 2 {
		t.Errorf("SetState clamped to %d; want 2", got)
	}
	if *fired != 0 {
		t.Error("SetState must not fire events")
	}
	if _, ok := tg.StateEvent(3); ok {
		t.Error("StateEvent out of range should fail")
	}
	if _, ok := tg.OnState(-1, 0, event.Action(func() {})); ok {
		t.Error("OnState out of range should fail")
	}
}
