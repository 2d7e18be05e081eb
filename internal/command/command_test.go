package command

import "testing"

func TestParse_TaskPrefixes(t *testing.T) {
	cases := []struct {
		input    string
		wantKind Kind
		wantArg  string
	}{
		{"task: summarize x", KindSummarize, "x"},
		{"task: summarize /tmp/notes.txt", KindSummarize, "/tmp/notes.txt"},
		{"task: draft email hi", KindDraftEmail, "hi"},
		{"task: get weather Paris", KindWeather, "Paris"},
		{"task: get weather New York", KindWeather, "New York"},
	}
	for _, tc := range cases {
		got := Parse(tc.input)
		if got.Kind != tc.wantKind {
			t.Errorf("Parse(%q) kind = %v, want %v", tc.input, got.Kind, tc.wantKind)
		}
		if got.Arg != tc.wantArg {
			t.Errorf("Parse(%q) arg = %q, want %q", tc.input, got.Arg, tc.wantArg)
		}
	}
}

func TestParse_Freeform(t *testing.T) {
	inputs := []string{
		"hello there",
		"TASK: summarize x",
		"task:summarize x",
		"task: summarise x",
		"task: dance",
		"task: summarize",
		"",
		"  task: get weather Paris",
	}
	for _, input := range inputs {
		got := Parse(input)
		if got.Kind != KindFreeform {
			t.Errorf("Parse(%q) kind = %v, want freeform", input, got.Kind)
		}
		if got.Arg != input {
			t.Errorf("Parse(%q) arg = %q, want input unchanged", input, got.Arg)
		}
	}
}

func TestParse_IsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		got := Parse("task: get weather Paris")
		if got.Kind != KindWeather || got.Arg != "Paris" {
			t.Fatalf("iteration %d: got %+v", i, got)
		}
	}
}

func TestParse_MalformedArgsPassThrough(t *testing.T) {
	// A trailing space after the prefix yields an empty argument; the
	// dispatcher hands it to the handler untouched.
	got := Parse("task: summarize ")
	if got.Kind != KindSummarize || got.Arg != "" {
		t.Fatalf("got %+v, want empty summarize arg", got)
	}
}

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		KindFreeform:   "freeform",
		KindSummarize:  "summarize",
		KindDraftEmail: "draft_email",
		KindWeather:    "get_weather",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, kind.String(), want)
		}
	}
}
