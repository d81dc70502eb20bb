package sessiontype

import "testing"

func TestAllTypesAreValid(t *testing.T) {
	for _, typ := range All() {
		if !typ.Valid() {
			t.Errorf("%s not valid", typ)
		}
	}
	if Type("karaoke").Valid() {
		t.Error("unknown type reported valid")
	}
}

func TestEveryTypeHasDisplayMapping(t *testing.T) {
	for _, typ := range All() {
		if typ.DisplayName() == "" || typ.DisplayName() == string(typ) {
			t.Errorf("%s has no display name mapping", typ)
		}
		if typ.Icon() == "" || typ.Icon() == "✦" {
			t.Errorf("%s has no icon mapping", typ)
		}
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		typ        Type
		family     bool
		interior   bool
		anchor     bool
		standalone bool
	}{
		{ChallengeIntro, true, false, true, false},
		{Learn, true, true, false, false},
		{Innovate, true, true, false, false},
		{Transform, true, false, true, false},
		{Reflection, true, false, false, false},
		{MockChallenge, true, false, false, true},
		{Masterclass, false, false, false, true},
		{Workshop, false, false, false, true},
		{Gap, false, false, false, true},
		{GenericCBL, true, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.typ.InChallengeFamily(); got != tt.family {
			t.Errorf("%s InChallengeFamily = %v, want %v", tt.typ, got, tt.family)
		}
		if got := tt.typ.Interior(); got != tt.interior {
			t.Errorf("%s Interior = %v, want %v", tt.typ, got, tt.interior)
		}
		if got := tt.typ.Anchor(); got != tt.anchor {
			t.Errorf("%s Anchor = %v, want %v", tt.typ, got, tt.anchor)
		}
		if got := tt.typ.Standalone(); got != tt.standalone {
			t.Errorf("%s Standalone = %v, want %v", tt.typ, got, tt.standalone)
		}
	}
}
