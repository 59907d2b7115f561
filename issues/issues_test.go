// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package issues

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/danielhkuo/we-the-people/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Should Congress have 12-year total term limits?", "should-congress-have-12-year-total-term-limits"},
		{"  Ban PACs!! ", "ban-pacs"},
		{"already-a-slug", "already-a-slug"},
		{"???", ""},
		{"Über Tax", "ber-tax"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestRecordVote(t *testing.T) {
	store := NewStore(DefaultSeed())

	before := store.Totals()
	issue, err := store.RecordVote("federal-term-limits", models.ChoiceYes)
	if err != nil {
		t.Fatalf("RecordVote() error = %v", err)
	}

	want := models.Counts{Yes: 1843, No: 623, Unsure: 211}
	if issue.Stats != want {
		t.Errorf("Expected stats %+v, got %+v", want, issue.Stats)
	}

	after := store.Totals()
	if after.Yes != before.Yes+1 {
		t.Errorf("Expected national yes total %d, got %d", before.Yes+1, after.Yes)
	}
	if after.No != before.No || after.Unsure != before.Unsure {
		t.Errorf("Other totals changed: before %+v after %+v", before, after)
	}

	// Other issues untouched
	for _, is := range store.List() {
		if is.ID == "federal-term-limits" {
			continue
		}
		for _, seed := range DefaultSeed() {
			if seed.ID == is.ID && seed.Stats != is.Stats {
				t.Errorf("Issue %s changed: %+v -> %+v", is.ID, seed.Stats, is.Stats)
			}
		}
	}
}

func TestRecordVote_EachChoice(t *testing.T) {
	tests := []struct {
		choice string
		want   models.Counts
	}{
		{models.ChoiceYes, models.Counts{Yes: 2216, No: 188, Unsure: 97}},
		{models.ChoiceNo, models.Counts{Yes: 2215, No: 189, Unsure: 97}},
		{models.ChoiceUnsure, models.Counts{Yes: 2215, No: 188, Unsure: 98}},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			store := NewStore(DefaultSeed())
			issue, err := store.RecordVote("single-subject-rule", tt.choice)
			if err != nil {
				t.Fatalf("RecordVote() error = %v", err)
			}
			if issue.Stats != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, issue.Stats)
			}
		})
	}
}

func TestRecordVote_Errors(t *testing.T) {
	store := NewStore(DefaultSeed())

	if _, err := store.RecordVote("nope", models.ChoiceYes); !errors.Is(err, ErrIssueNotFound) {
		t.Errorf("Expected ErrIssueNotFound, got %v", err)
	}
	if _, err := store.RecordVote("federal-term-limits", "maybe"); !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("Expected ErrInvalidChoice, got %v", err)
	}

	// Failed votes change nothing
	want := models.Counts{}
	for _, is := range DefaultSeed() {
		want = want.Add(is.Stats)
	}
	if got := store.Totals(); got != want {
		t.Errorf("Totals changed after failed votes: %+v", got)
	}
}

func TestPropose(t *testing.T) {
	store := NewStore(DefaultSeed())

	issue, err := store.Propose(models.Proposal{
		Title:   "  Publish All Votes Online ",
		Summary: " Every recorded vote posted within 24 hours. ",
	})
	if err != nil {
		t.Fatalf("Propose() error = %v", err)
	}

	if issue.ID != "publish-all-votes-online" {
		t.Errorf("Expected slug id, got %q", issue.ID)
	}
	if issue.Title != "Publish All Votes Online" || issue.Detail != "Every recorded vote posted within 24 hours." {
		t.Errorf("Expected trimmed fields, got %+v", issue)
	}
	if len(issue.Tags) != 1 || issue.Tags[0] != models.DefaultCategory {
		t.Errorf("Expected default category tag, got %v", issue.Tags)
	}
	if issue.Stats != (models.Counts{}) {
		t.Errorf("Expected zero counts, got %+v", issue.Stats)
	}

	list := store.List()
	if len(list) != len(DefaultSeed())+1 {
		t.Fatalf("Expected exactly one new issue, got %d issues", len(list))
	}
	if list[0].ID != issue.ID {
		t.Errorf("Expected new issue first, got %q", list[0].ID)
	}

	// The new issue is votable
	if _, err := store.RecordVote(issue.ID, models.ChoiceNo); err != nil {
		t.Errorf("RecordVote() on proposal error = %v", err)
	}
}

func TestPropose_Empty(t *testing.T) {
	tests := []struct {
		name string
		p    models.Proposal
	}{
		{"empty title", models.Proposal{Summary: "text"}},
		{"empty summary", models.Proposal{Title: "title"}},
		{"whitespace only", models.Proposal{Title: "  ", Summary: "\t\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(DefaultSeed())
			if _, err := store.Propose(tt.p); !errors.Is(err, ErrEmptyProposal) {
				t.Errorf("Expected ErrEmptyProposal, got %v", err)
			}
			if n := len(store.List()); n != len(DefaultSeed()) {
				t.Errorf("Expected no new issue, got %d issues", n)
			}
		})
	}
}

func TestPropose_UniqueIDs(t *testing.T) {
	store := NewStore(DefaultSeed())
	p := models.Proposal{Title: "Federal term limits", Summary: "Again.", Category: "Reform"}

	first, _ := store.Propose(p)
	second, _ := store.Propose(p)
	symbols, _ := store.Propose(models.Proposal{Title: "!!!", Summary: "x"})

	if first.ID != "federal-term-limits-2" {
		t.Errorf("Expected collision suffix, got %q", first.ID)
	}
	if second.ID != "federal-term-limits-3" {
		t.Errorf("Expected second collision suffix, got %q", second.ID)
	}
	if symbols.ID != "proposal" {
		t.Errorf("Expected fallback id, got %q", symbols.ID)
	}
	if first.Tags[0] != "Reform" {
		t.Errorf("Expected category tag, got %v", first.Tags)
	}
}

func TestTotals(t *testing.T) {
	store := NewStore(DefaultSeed())

	got := store.Totals()
	want := models.Counts{Yes: 1842 + 2215 + 1999, No: 623 + 188 + 301, Unsure: 211 + 97 + 155}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	empty := NewStore(nil)
	if got := empty.Totals(); got != (models.Counts{}) {
		t.Errorf("Expected zero totals, got %+v", got)
	}
}

func TestListIsCopy(t *testing.T) {
	store := NewStore(DefaultSeed())

	list := store.List()
	list[0].Stats.Yes = 0
	list[0].Tags[0] = "mutated"

	is, _ := store.Get(list[0].ID)
	if is.Stats.Yes == 0 || is.Tags[0] == "mutated" {
		t.Error("List() exposed internal state")
	}
}

func TestConcurrentVotes(t *testing.T) {
	store := NewStore(DefaultSeed())

	const voters = 50
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.RecordVote("ban-corporate-donations", models.ChoiceUnsure)
		}()
	}
	wg.Wait()

	is, _ := store.Get("ban-corporate-donations")
	if is.Stats.Unsure != 155+voters {
		t.Errorf("Expected %d unsure, got %d", 155+voters, is.Stats.Unsure)
	}
}

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed("")
	if err != nil || len(seed) != 3 {
		t.Fatalf("LoadSeed(\"\") = %d issues, %v", len(seed), err)
	}

	path := filepath.Join(t.TempDir(), "issues.yaml")
	doc := `
issues:
  - title: Publish All Votes Online?
    detail: Every vote posted within a day.
    tags: [Transparency]
    stats: {yes: 10, no: 2, unsure: 1}
  - id: custom-id
    title: Second issue
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	seed, err = LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}
	if len(seed) != 2 {
		t.Fatalf("Expected 2 issues, got %d", len(seed))
	}
	if seed[0].ID != "publish-all-votes-online" {
		t.Errorf("Expected derived id, got %q", seed[0].ID)
	}
	if seed[0].Stats != (models.Counts{Yes: 10, No: 2, Unsure: 1}) {
		t.Errorf("Unexpected stats %+v", seed[0].Stats)
	}
	if seed[1].ID != "custom-id" {
		t.Errorf("Expected explicit id, got %q", seed[1].ID)
	}

	if _, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "issues: [unclosed"},
		{"missing title", "issues:\n  - detail: x\n"},
		{"duplicate id", "issues:\n  - title: A\n  - title: a\n"},
		{"negative count", "issues:\n  - title: A\n    stats: {yes: -1}\n"},
		{"symbol title", "issues:\n  - title: '???'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSeed([]byte(tt.doc)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestUntaggedIssueEncodesEmptyTags(t *testing.T) {
	seed, err := ParseSeed([]byte("issues:\n  - title: No tags here\n"))
	if err != nil {
		t.Fatalf("ParseSeed() error = %v", err)
	}
	if seed[0].Tags == nil {
		t.Error("Expected non-nil tags from seed")
	}

	store := NewStore(seed)
	out, err := json.Marshal(store.List())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `"tags":[]`) {
		t.Errorf("Expected empty tags array, got %s", out)
	}
}
