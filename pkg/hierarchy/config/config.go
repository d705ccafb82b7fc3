// Package config loads hierarchy definitions from YAML or JSON files.
//
// A definition names a concept and its parent-to-children relations:
//
//	concept: org-chart
//	relations:
//	  eng: [platform, product]
//	  platform: [infra]
//
// Definitions build identifier-only hierarchies; callers needing typed
// payloads should construct hierarchies directly from items.
package config

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/hierarchy/pkg/hierarchy"
	"github.com/randalmurphal/hierarchy/pkg/hierarchy/relation"
)

// Definition describes a hierarchy: a concept name plus an
// identifier-to-children multimap.
type Definition struct {
	// Concept is the hierarchy's logical name. Required.
	Concept string `yaml:"concept" json:"concept"`

	// Relations maps each parent identifier to its ordered children.
	Relations map[string][]string `yaml:"relations" json:"relations"`
}

// Sentinel errors for definition validation.
var (
	// ErrNoConcept indicates the definition is missing a concept name.
	ErrNoConcept = errors.New("definition has no concept name")

	// ErrEmptyIdentifier indicates a relation uses an empty identifier.
	ErrEmptyIdentifier = errors.New("empty identifier in relations")
)

// Validate checks the definition for structural problems.
// An empty relations map is valid and builds an empty hierarchy.
func (d Definition) Validate() error {
	if d.Concept == "" {
		return ErrNoConcept
	}
	for subject, children := range d.Relations {
		if subject == "" {
			return ErrEmptyIdentifier
		}
		for _, child := range children {
			if child == "" {
				return fmt.Errorf("%w: under subject %q", ErrEmptyIdentifier, subject)
			}
		}
	}
	return nil
}

// Build validates the definition and constructs the identifier-only
// hierarchy it describes.
func (d Definition) Build() (*hierarchy.Hierarchy[string], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return hierarchy.FromRelations(d.Concept, relation.Map(d.Relations))
}
