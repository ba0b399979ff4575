package demo

import (
	"bytes"
	"strings"
	"testing"
)

func TestAutocomplete_Session(t *testing.T) {
	in := strings.NewReader("Ada\nglam\nvhs\nbub\nzzz\n\n")
	var out, errOut bytes.Buffer
	if err := Autocomplete(in, &out, &errOut); err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Hello, Ada!",
		"charmbracelet/glamour\n",
		"charmbracelet/vhs\n",
		"did you mean: ",
		"You picked 2 repo(s): glamour, vhs.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(errOut.String(), `no repository matches "zzz"`) {
		t.Fatalf("errOut = %q", errOut.String())
	}
}

func TestAutocomplete_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	if err := Autocomplete(strings.NewReader(""), &out, &out); err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}
	if strings.Contains(out.String(), "Hello") {
		t.Fatalf("greeted without a name: %q", out.String())
	}
}

func TestComplete(t *testing.T) {
	if repo, _ := complete("huh"); repo != "huh" {
		t.Fatalf("exact name: %q", repo)
	}
	repo, sugg := complete("bub")
	if repo != "" || len(sugg) < 2 {
		t.Fatalf("bub should be ambiguous: %q %v", repo, sugg)
	}
	if repo, sugg := complete("qqq"); repo != "" || sugg != nil {
		t.Fatalf("qqq: %q %v", repo, sugg)
	}
}
