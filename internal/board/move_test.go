package board

import "testing"

func TestParseMove(t *testing.T) {
	m, err := ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.Origin != 12 || m.Destination != 28 || m.Promotion != NoPromotion {
		t.Errorf("ParseMove(e2e4) = %+v", m)
	}

	m2, err := ParseMove("a7a8q")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m2.Origin != 48 || m2.Destination != 56 || m2.Promotion != PromoteQueen {
		t.Errorf("ParseMove(a7a8q) = %+v", m2)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	for _, s := range []string{"e2e4", "a7a8q", "e7e8n", "h2h1r", "b1c3"} {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if got := m.String(); got != s {
			t.Errorf("round-trip %q -> %q", s, got)
		}
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "e2e", "e2e4qq", "z2e4", "e2z4", "e2e4z"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q): expected error, got none", s)
		}
	}
}
