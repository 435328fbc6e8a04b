// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		id       Id
		headline string
	}{
		{"config load", ConfigLoadFailedId, "Failed to load configuration"},
		{"malformed exceptions", ExceptionsMalformedId, "Malformed exception table"},
		{"workspace load", WorkspaceLoadFailedId, "workspace manifest"},
		{"root not found", RootNotFoundId, "Root directory not found"},
		{"git listing", GitListingFailedId, "Git file listing failed"},
		{"source read", SourceReadFailedId, "Failed to read a source file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := Get(tt.id)
			if is == nil {
				t.Fatalf("Get(%d) = nil", tt.id)
			}
			if is.Id() != tt.id {
				t.Errorf("Get(%d).Id() = %d", tt.id, is.Id())
			}
			if !strings.Contains(string(is.MarkdownMsg()), tt.headline) {
				t.Errorf("issue %d does not mention %q", tt.id, tt.headline)
			}
		})
	}
}

func TestGetUnknownId(t *testing.T) {
	if is := Get(Id(9999)); is != nil {
		t.Errorf("Get(9999) = %v, want nil", is)
	}
}

func TestGetZeroId(t *testing.T) {
	// The zero Id is reserved so an unset value never resolves.
	if Get(0) != nil {
		t.Error("Get(0) resolved to an issue")
	}
}

func TestValuesMatchesDeclaredIds(t *testing.T) {
	all := Values()

	seen := make(map[Id]bool, len(all))
	for _, is := range all {
		if seen[is.Id()] {
			t.Errorf("Values() contains Id %d twice", is.Id())
		}
		seen[is.Id()] = true
	}

	for id := ConfigLoadFailedId; id <= SourceReadFailedId; id++ {
		if !seen[id] {
			t.Errorf("Values() is missing Id %d", id)
		}
	}
	if len(all) != int(SourceReadFailedId) {
		t.Errorf("Values() returned %d issues, want %d", len(all), SourceReadFailedId)
	}
}

func TestEveryIssueSuggestsARemedy(t *testing.T) {
	for _, is := range Values() {
		md := string(is.MarkdownMsg())
		if strings.TrimSpace(md) == "" {
			t.Errorf("issue %d has an empty message", is.Id())
			continue
		}
		if !strings.Contains(md, "Things you can try") {
			t.Errorf("issue %d has no remediation section", is.Id())
		}
	}
}

func TestRenderPassesMarkdownThrough(t *testing.T) {
	restore := render
	defer func() { render = restore }()

	var gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotStyle = stylePath
		return in, nil
	}

	out, err := Get(RootNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if gotStyle != "dark" {
		t.Errorf("style path = %q, want %q", gotStyle, "dark")
	}
	if !strings.Contains(out, "Root directory not found") {
		t.Errorf("rendered output lost the message body:\n%s", out)
	}
}

func TestRenderAppendsLinks(t *testing.T) {
	restore := render
	defer func() { render = restore }()
	render = func(in, stylePath string) (string, error) { return in, nil }

	is := &Issue{
		id:       Id(42),
		mdMsg:    "# Something broke",
		docLinks: []HttpLink{"https://example.com/docs"},
	}
	out, err := is.Render("")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "See also") {
		t.Errorf("link section missing from rendered output:\n%s", out)
	}
	if !strings.Contains(out, "https://example.com/docs") {
		t.Errorf("doc link missing from rendered output:\n%s", out)
	}
}

func TestLinkAccessorsCopy(t *testing.T) {
	is := &Issue{docLinks: []HttpLink{"https://example.com"}, extLinks: []HttpLink{"https://example.org"}}

	is.DocLinks()[0] = "https://mutated.example"
	is.ExtLinks()[0] = "https://mutated.example"

	if is.docLinks[0] != "https://example.com" || is.extLinks[0] != "https://example.org" {
		t.Error("link accessors exposed the backing slices")
	}
}
