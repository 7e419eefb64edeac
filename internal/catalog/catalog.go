/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package catalog holds the built-in template catalog and seeds new projects
// from it. Templates are read-only; seeding deep-copies sections, mints fresh
// section ids, and assigns orders by position.
package catalog

import (
	"fmt"
	"sort"
	"time"

	"sitebuilder/internal/domain"
)

// Catalog is an in-memory template collection.
type Catalog struct {
	byID map[string]domain.Template
}

// Builtin returns the catalog of built-in templates.
func Builtin() *Catalog {
	c := &Catalog{byID: make(map[string]domain.Template)}
	for _, t := range seedTemplates() {
		c.byID[t.ID] = t
	}
	return c
}

// All returns every template sorted by id.
func (c *Catalog) All() []domain.Template {
	out := make([]domain.Template, 0, len(c.byID))
	for _, t := range c.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByID returns the template with the given id.
func (c *Catalog) ByID(id string) (domain.Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// ByCategory returns templates in the given category sorted by id.
func (c *Catalog) ByCategory(category string) []domain.Template {
	var out []domain.Template
	for _, t := range c.byID {
		if t.Category == category {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NewProjectFromTemplate seeds a new project from a template: sections are
// deep-copied onto a fresh home page with new ids, orders assigned by
// position starting at 1. The blank template id seeds an empty project.
func (c *Catalog) NewProjectFromTemplate(templateID, name, userID string) (domain.Project, error) {
	now := time.Now().UTC()
	p := domain.Project{
		ID:         domain.MintID(),
		UserID:     userID,
		Name:       name,
		TemplateID: templateID,
		Settings:   domain.DefaultSettings(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	var sections []domain.Section
	if templateID != "" && templateID != "blank" {
		t, ok := c.byID[templateID]
		if !ok {
			return domain.Project{}, fmt.Errorf("unknown template %q", templateID)
		}
		sections = make([]domain.Section, len(t.Sections))
		for i, s := range t.Sections {
			cp := s.Clone()
			cp.ID = domain.MintID()
			if cp.Order == 0 {
				cp.Order = i + 1
			}
			sections[i] = cp
		}
	}
	p.Pages = []domain.Page{{
		ID:         "home",
		Name:       "Home",
		Slug:       "home",
		Sections:   sections,
		IsHomePage: true,
	}}
	p.Sections = append([]domain.Section(nil), sections...)
	return p, nil
}
