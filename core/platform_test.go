package core

import "testing"

func TestPlatformTable(t *testing.T) {
	cases := []struct {
		p        Platform
		name     string
		clockHz  uint32
		picos    uint64
		branch   uint32
		nopIssue uint32
	}{
		{Pico, "Pico", 125_000_000, 8000, 2, 1},
		{Pico2, "Pico 2", 150_000_000, 6666, 1, 2},
	}

	for _, c := range cases {
		if got := c.p.Name(); got != c.name {
			t.Errorf("%s: Name() = %q", c.name, got)
		}
		if got := c.p.ClockHz(); got != c.clockHz {
			t.Errorf("%s: ClockHz() = %d, want %d", c.name, got, c.clockHz)
		}
		if got := c.p.PicosPerCycle(); got != c.picos {
			t.Errorf("%s: PicosPerCycle() = %d, want %d", c.name, got, c.picos)
		}
		if got := c.p.BranchCycles(); got != c.branch {
			t.Errorf("%s: BranchCycles() = %d, want %d", c.name, got, c.branch)
		}
		if got := c.p.NopIssueWidth(); got != c.nopIssue {
			t.Errorf("%s: NopIssueWidth() = %d, want %d", c.name, got, c.nopIssue)
		}
	}
}

func TestActivePlatformRoundTrip(t *testing.T) {
	SetActivePlatform(Pico2)
	if got := ActivePlatform(); got != Pico2 {
		t.Errorf("ActivePlatform() = %v, want Pico2", got)
	}
	SetActivePlatform(Pico)
	if got := ActivePlatform(); got != Pico {
		t.Errorf("ActivePlatform() = %v, want Pico", got)
	}
}
