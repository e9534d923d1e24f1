package registry

import "testing"

type stubSniffer struct {
	name     string
	priority int
	quick    bool
	reason   string
}

func (s stubSniffer) Name() string           { return s.name }
func (s stubSniffer) Priority() int          { return s.priority }
func (s stubSniffer) QuickCheck(string) bool { return s.quick }
func (s stubSniffer) Sniff(string) *Verdict {
	if s.reason == "" {
		return nil
	}
	return &Verdict{Reason: s.reason, Confidence: 0.5}
}

func TestDispatchOrder(t *testing.T) {
	r := New(
		stubSniffer{name: "late", priority: 30, quick: true, reason: "late"},
		stubSniffer{name: "early", priority: 10, quick: true, reason: "early"},
		stubSniffer{name: "skipped", priority: 5, quick: false, reason: "skipped"},
	)

	v := r.Dispatch("anything")
	if v == nil {
		t.Fatal("Dispatch() = nil")
	}
	if v.Reason != "early" || v.Sniffer != "early" {
		t.Errorf("Dispatch() = %+v, want early", v)
	}
}

func TestDispatchNoVerdict(t *testing.T) {
	r := New(stubSniffer{name: "pass", priority: 1, quick: true})
	if v := r.Dispatch("x"); v != nil {
		t.Errorf("Dispatch() = %+v, want nil", v)
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := New(stubSniffer{name: "a", priority: 1, quick: true, reason: "old"})
	r.Register(stubSniffer{name: "a", priority: 1, quick: true, reason: "new"})
	if r.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", r.Count())
	}
	if v := r.Dispatch("x"); v == nil || v.Reason != "new" {
		t.Errorf("Dispatch() = %+v, want new", v)
	}
}

func TestTraceRunsAll(t *testing.T) {
	r := New(
		stubSniffer{name: "b", priority: 2, quick: true, reason: "b"},
		stubSniffer{name: "a", priority: 1, quick: true, reason: "a"},
		stubSniffer{name: "c", priority: 3, quick: false, reason: "c"},
	)
	traces := r.Trace("x")
	if len(traces) != 3 {
		t.Fatalf("len(Trace()) = %d, want 3", len(traces))
	}
	if traces[0].SnifferName != "a" || !traces[0].Matched() {
		t.Errorf("traces[0] = %+v", traces[0])
	}
	if traces[2].QuickCheck.Passed || traces[2].Matched() {
		t.Errorf("traces[2] = %+v, want quick check fail", traces[2])
	}
}
