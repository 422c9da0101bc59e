package dicttrie

import "testing"

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		NoMatch:      "NoMatch",
		NoValue:      "NoValue",
		Intermediate: "Intermediate",
		FinalValue:   "FinalValue",
		Status(99):   "Status(?)",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Fatalf("Status(%d).String() = %q, want %q", s, got, want)
		}
	}
}

func TestStatusHasValue(t *testing.T) {
	if NoMatch.hasValue() || NoValue.hasValue() {
		t.Fatalf("NoMatch/NoValue must not report hasValue")
	}
	if !Intermediate.hasValue() || !FinalValue.hasValue() {
		t.Fatalf("Intermediate/FinalValue must report hasValue")
	}
}
