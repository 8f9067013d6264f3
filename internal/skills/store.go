// Package skills holds the user's declared skill list and persona.
package skills

import (
	"slices"
	"strings"
	"sync"
)

// Persona is the user's declared role. It is display-only and does not
// influence analysis.
type Persona string

const (
	PersonaStudent      Persona = "student"
	PersonaProfessional Persona = "professional"
	PersonaSwitcher     Persona = "switcher"
)

// Personas lists the known personas in display order.
var Personas = []Persona{PersonaStudent, PersonaProfessional, PersonaSwitcher}

// Valid reports whether p is a known persona.
func (p Persona) Valid() bool {
	return slices.Contains(Personas, p)
}

// Store is an insertion-ordered, duplicate-free skill list plus the selected
// persona. Skills compare by exact string equality.
type Store struct {
	mu      sync.Mutex
	skills  []string
	persona Persona
}

// NewStore returns an empty store with the student persona selected.
func NewStore() *Store {
	return &Store{persona: PersonaStudent}
}

// Add appends name unless it is empty or already present.
func (s *Store) Add(name string) bool {
	if name == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.skills, name) {
		return false
	}
	s.skills = append(s.skills, name)
	return true
}

// Remove deletes the first exact match of name.
func (s *Store) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.Index(s.skills, name)
	if i < 0 {
		return false
	}
	s.skills = slices.Delete(s.skills, i, i+1)
	return true
}

// SeedDefaults appends defaults only when the list is empty.
func (s *Store) SeedDefaults(defaults []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.skills) > 0 {
		return false
	}
	for _, d := range defaults {
		if d != "" && !slices.Contains(s.skills, d) {
			s.skills = append(s.skills, d)
		}
	}
	return len(s.skills) > 0
}

// Skills returns a copy of the list.
func (s *Store) Skills() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.skills)
}

// Contains reports whether name is already in the list. The match is exact.
func (s *Store) Contains(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.skills, name)
}

// Len returns the number of skills.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.skills)
}

// Persona returns the selected persona.
func (s *Store) Persona() Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persona
}

// SetPersona selects p. Unknown personas are ignored.
func (s *Store) SetPersona(p Persona) bool {
	if !p.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persona = p
	return true
}

// CommitText returns the skill text to commit from the raw field contents:
// surrounding whitespace is trimmed, then one trailing comma is stripped. An
// empty result means nothing should be committed.
func CommitText(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), ",")
}
