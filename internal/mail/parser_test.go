package mail

import (
	"strings"
	"testing"
)

func TestParseRecipients_Newline(t *testing.T) {
	got, err := ParseRecipients(strings.NewReader("a@x.com\nb@x.com\nc@x.com"), "\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"a@x.com", "b@x.com", "c@x.com"}
	assertEqual(t, got, want)
}

func TestParseRecipients_CommaSeparator(t *testing.T) {
	got, err := ParseRecipients(strings.NewReader("a@x.com, b@x.com ,c@x.com\nd@x.com"), ",")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	assertEqual(t, got, []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"})
}

// Round trip: parsing the join of a list reproduces the list.
func TestParseRecipients_RoundTrip(t *testing.T) {
	for _, sep := range []string{",", ";", "|", "\n"} {
		list := []string{"a@x.com", "b@x.com", "a@x.com", "c@y.org"}
		got, err := ParseRecipients(strings.NewReader(strings.Join(list, sep)), sep)
		if err != nil {
			t.Fatalf("sep %q: parse: %v", sep, err)
		}
		assertEqual(t, got, list)
	}
}

// Empty tokens from blank lines, consecutive or trailing separators are
// dropped, never surfaced as empty-string recipients.
func TestParseRecipients_EmptyTokens(t *testing.T) {
	got, err := ParseRecipients(strings.NewReader("a@x.com,,b@x.com,\n\n,\n"), ",")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	assertEqual(t, got, []string{"a@x.com", "b@x.com"})
}

func TestParseRecipients_DuplicatesPreserved(t *testing.T) {
	got, err := ParseRecipients(strings.NewReader("a@x.com\na@x.com"), "\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	assertEqual(t, got, []string{"a@x.com", "a@x.com"})
}

func TestParseRecipients_EmptyInput(t *testing.T) {
	got, err := ParseRecipients(strings.NewReader(""), ",")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no recipients, got %v", got)
	}
}

func assertEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
