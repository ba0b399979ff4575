package demo

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sahilm/fuzzy"
)

// repos is the pick list; kept local so the demo needs no network.
var repos = []string{
	"bubbletea",
	"bubbles",
	"lipgloss",
	"glamour",
	"wish",
	"huh",
	"soft-serve",
	"vhs",
	"charm",
	"gum",
}

const maxSuggestions = 4

// Autocomplete is a small line-oriented program: it asks for a name, then
// completes repository names typed on in until an empty line or end of
// input. Unknown names are reported on errOut.
func Autocomplete(in io.Reader, out, errOut io.Writer) error {
	sc := bufio.NewScanner(in)

	fmt.Fprint(out, "What is your name? ")
	if !sc.Scan() {
		return sc.Err()
	}
	name := strings.TrimSpace(sc.Text())
	if name == "" {
		name = "stranger"
	}
	fmt.Fprintf(out, "Hello, %s!\n", name)

	var picked []string
	for {
		fmt.Fprint(out, "Pick a Charm repo (empty line to finish): ")
		if !sc.Scan() {
			break
		}
		q := strings.TrimSpace(sc.Text())
		if q == "" {
			break
		}
		repo, suggestions := complete(q)
		switch {
		case repo != "":
			picked = append(picked, repo)
			fmt.Fprintf(out, "charmbracelet/%s\n", repo)
		case len(suggestions) > 0:
			fmt.Fprintf(out, "did you mean: %s?\n", strings.Join(suggestions, ", "))
		default:
			fmt.Fprintf(errOut, "no repository matches %q\n", q)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Bye, %s. You picked %d repo(s)%s.\n", name, len(picked), listSuffix(picked))
	return nil
}

// complete returns the repository q names unambiguously, or the best
// candidates when it does not.
func complete(q string) (string, []string) {
	matches := fuzzy.Find(q, repos)
	if len(matches) == 0 {
		return "", nil
	}
	for _, m := range matches {
		if m.Str == q {
			return m.Str, nil
		}
	}
	if len(matches) == 1 {
		return matches[0].Str, nil
	}
	var out []string
	for i, m := range matches {
		if i == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return "", out
}

func listSuffix(picked []string) string {
	if len(picked) == 0 {
		return ""
	}
	return ": " + strings.Join(picked, ", ")
}
