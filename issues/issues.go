// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package issues

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/danielhkuo/we-the-people/models"
)

var (
	ErrIssueNotFound = errors.New("issue not found")
	ErrInvalidChoice = errors.New("choice must be yes, no or unsure")
	ErrEmptyProposal = errors.New("title and summary are required")
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives an issue ID from its title
func Slugify(title string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// Store holds the issue list in display order. Proposals go to the front.
type Store struct {
	mu     sync.RWMutex
	issues []models.Issue
	byID   map[string]int
}

func NewStore(seed []models.Issue) *Store {
	s := &Store{}
	s.issues = make([]models.Issue, 0, len(seed))
	for _, is := range seed {
		s.issues = append(s.issues, cloneIssue(is))
	}
	s.reindex()
	return s
}

// List returns a copy of every issue
func (s *Store) List() []models.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Issue, len(s.issues))
	for i, is := range s.issues {
		out[i] = cloneIssue(is)
	}
	return out
}

func (s *Store) Get(id string) (models.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return models.Issue{}, ErrIssueNotFound
	}
	return cloneIssue(s.issues[i]), nil
}

// RecordVote increments exactly one counter of one issue
func (s *Store) RecordVote(id, choice string) (models.Issue, error) {
	if !models.ValidChoice(choice) {
		return models.Issue{}, ErrInvalidChoice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return models.Issue{}, ErrIssueNotFound
	}

	stats := &s.issues[i].Stats
	switch choice {
	case models.ChoiceYes:
		stats.Yes++
	case models.ChoiceNo:
		stats.No++
	case models.ChoiceUnsure:
		stats.Unsure++
	}
	return cloneIssue(s.issues[i]), nil
}

// Propose prepends a new zero-count issue built from the draft
func (s *Store) Propose(p models.Proposal) (models.Issue, error) {
	p, err := NormalizeProposal(p)
	if err != nil {
		return models.Issue{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issue := models.Issue{
		ID:     s.uniqueID(Slugify(p.Title)),
		Title:  p.Title,
		Detail: p.Summary,
		Tags:   []string{p.Category},
	}

	s.issues = append([]models.Issue{issue}, s.issues...)
	s.reindex()
	return cloneIssue(issue), nil
}

// Totals sums every counter across all issues
func (s *Store) Totals() models.Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total models.Counts
	for _, is := range s.issues {
		total = total.Add(is.Stats)
	}
	return total
}

// NormalizeProposal trims the draft and fills the default category.
// Empty title or summary is rejected.
func NormalizeProposal(p models.Proposal) (models.Proposal, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Summary = strings.TrimSpace(p.Summary)
	p.Category = strings.TrimSpace(p.Category)
	if p.Title == "" || p.Summary == "" {
		return models.Proposal{}, ErrEmptyProposal
	}
	if p.Category == "" {
		p.Category = models.DefaultCategory
	}
	return p, nil
}

// uniqueID must be called with mu held
func (s *Store) uniqueID(base string) string {
	if base == "" {
		base = "proposal"
	}
	id := base
	for n := 2; ; n++ {
		if _, taken := s.byID[id]; !taken {
			return id
		}
		id = base + "-" + strconv.Itoa(n)
	}
}

// reindex must be called with mu held
func (s *Store) reindex() {
	s.byID = make(map[string]int, len(s.issues))
	for i, is := range s.issues {
		if _, dup := s.byID[is.ID]; !dup {
			s.byID[is.ID] = i
		}
	}
}

func cloneIssue(is models.Issue) models.Issue {
	is.Tags = append([]string{}, is.Tags...)
	return is
}
