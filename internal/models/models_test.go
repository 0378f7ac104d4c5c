package models

import "testing"

func TestParseColorAcceptsEveryToken(t *testing.T) {
	for _, c := range Colors {
		parsed, err := ParseColor(string(c))
		if err != nil {
			t.Errorf("ParseColor(%q) returned error: %v", c, err)
		}
		if parsed != c {
			t.Errorf("ParseColor(%q) = %q, want %q", c, parsed, c)
		}
	}
}

func TestParseColorRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "magenta", "Blue"} {
		if _, err := ParseColor(s); err == nil {
			t.Errorf("ParseColor(%q) should have failed", s)
		}
	}
}

func TestColorANSICodes(t *testing.T) {
	seen := make(map[string]Color)
	for _, c := range Colors {
		code := c.ANSI()
		if code == "" || code == "255" {
			t.Errorf("Color %q has no dedicated terminal code (got %q)", c, code)
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("Colors %q and %q share terminal code %q", prev, c, code)
		}
		seen[code] = c
	}
}

func TestColorANSIFallback(t *testing.T) {
	if code := Color("mauve").ANSI(); code != "255" {
		t.Errorf("unknown color code = %q, want 255", code)
	}
}

func TestPriorityValid(t *testing.T) {
	for _, p := range Priorities {
		if !p.Valid() {
			t.Errorf("Priority %q should be valid", p)
		}
	}
	for _, p := range []Priority{"", "low", "Urgent"} {
		if p.Valid() {
			t.Errorf("Priority %q should be invalid", p)
		}
	}
}
