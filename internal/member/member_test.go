package member

import "testing"

func TestGateAllow(t *testing.T) {
	g := NewGate(nil)
	cases := []struct {
		id   string
		want bool
	}{
		{"ELV001", true},
		{"elv001", true},
		{"  elv123  ", true},
		{"ELV999", false},
		{"", false},
		{"   ", false},
		{"ELV 001", false},
	}
	for _, c := range cases {
		if got := g.Allow(c.id); got != c.want {
			t.Errorf("Allow(%q) = %v, want %v", c.id, got, c.want)
		}
	}
}

func TestGateExtraIDs(t *testing.T) {
	g := NewGate([]string{" elv200 ", "GUEST"})
	if !g.Allow("ELV200") {
		t.Error("extra ID should be accepted after normalization")
	}
	if !g.Allow("guest") {
		t.Error("extra ID matching is case-insensitive")
	}
	if g.Allow("ELV201") {
		t.Error("unknown ID accepted")
	}
}
