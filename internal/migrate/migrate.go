/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package migrate normalizes legacy project documents to the current
// page-based shape. Older documents carry a flat section list and no pages;
// normalization wraps those sections into a canonical home page without
// dropping or reordering anything. Running it on an already-migrated document
// is a no-op apart from refreshing the derived legacy mirror.
package migrate

import "sitebuilder/internal/domain"

// Canonical identity of the page minted for legacy flat-section documents.
const (
	HomePageID   = "home"
	HomePageName = "Home"
	HomePageSlug = "home"
)

// Normalize brings a project document into the current shape, in place.
// It reports whether a legacy document was migrated.
//
// Rules:
//   - a document without pages but with legacy sections gets a single home
//     page holding those sections, same ids, same order;
//   - exactly one page is marked home once any page exists (first marked
//     wins; with none marked the first page becomes home);
//   - the legacy Sections field is re-derived from the home page, since it is
//     read-compatibility ballast, never authoritative.
func Normalize(p *domain.Project) bool {
	if p == nil {
		return false
	}
	migrated := false
	if len(p.Pages) == 0 && len(p.Sections) > 0 {
		sections := make([]domain.Section, len(p.Sections))
		for i, s := range p.Sections {
			sections[i] = s.Clone()
		}
		p.Pages = []domain.Page{{
			ID:         HomePageID,
			Name:       HomePageName,
			Slug:       HomePageSlug,
			Sections:   sections,
			IsHomePage: true,
		}}
		migrated = true
	}
	enforceSingleHome(p)
	refreshLegacyMirror(p)
	return migrated
}

// enforceSingleHome keeps the first page marked home and clears the rest;
// with no page marked, the first page becomes home.
func enforceSingleHome(p *domain.Project) {
	if len(p.Pages) == 0 {
		return
	}
	seen := false
	for i := range p.Pages {
		if p.Pages[i].IsHomePage {
			if seen {
				p.Pages[i].IsHomePage = false
			}
			seen = true
		}
	}
	if !seen {
		p.Pages[0].IsHomePage = true
	}
}

// refreshLegacyMirror derives the flat Sections field from the home page.
func refreshLegacyMirror(p *domain.Project) {
	hp := p.HomePage()
	if hp == nil {
		p.Sections = nil
		return
	}
	mirror := make([]domain.Section, len(hp.Sections))
	for i, s := range hp.Sections {
		mirror[i] = s.Clone()
	}
	p.Sections = mirror
}
