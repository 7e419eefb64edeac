/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

// This file defines the core data model for the website builder: sections,
// pages, project-wide settings, the project document itself, and the read-only
// template catalog entries. Documents serialize to human-readable JSON.

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// SectionType tags a section with its rendering variant. The set is closed for
// rendering purposes, but unknown tags are preserved so foreign sections stay
// selectable and deletable.
type SectionType string

const (
	SectionHeader       SectionType = "header"
	SectionHero         SectionType = "hero"
	SectionAbout        SectionType = "about"
	SectionServices     SectionType = "services"
	SectionFooter       SectionType = "footer"
	SectionCustom       SectionType = "custom"
	SectionProducts     SectionType = "products"
	SectionTestimonials SectionType = "testimonials"
)

// KnownSectionTypes lists every type the renderer has a layout for.
var KnownSectionTypes = []SectionType{
	SectionHeader, SectionHero, SectionAbout, SectionServices,
	SectionFooter, SectionCustom, SectionProducts, SectionTestimonials,
}

// Known reports whether t has a dedicated rendering variant.
func (t SectionType) Known() bool {
	for _, k := range KnownSectionTypes {
		if t == k {
			return true
		}
	}
	return false
}

// Section is a single content block on a page. ID is stable for the section's
// lifetime and unique within the whole project document. Sections on a page
// display sorted ascending by Order; ties keep their original position.
type Section struct {
	ID     string        `json:"id"`
	Type   SectionType   `json:"type"`
	Order  int           `json:"order"`
	Config SectionConfig `json:"config"`
}

// Clone returns a deep copy of the section with the same ID. Duplication must
// mint a fresh ID afterwards.
func (s Section) Clone() Section {
	c := s
	if s.Config != nil {
		c.Config = s.Config.Clone()
	}
	return c
}

// Page is a named, ordered collection of sections. Slug is the URL-safe
// identifier, unique within the project. Exactly one page per project is the
// home page once any page exists.
type Page struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Sections   []Section `json:"sections"`
	IsHomePage bool      `json:"isHomePage"`
}

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	c := p
	c.Sections = make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		c.Sections[i] = s.Clone()
	}
	return c
}

// SortedSections returns the page's sections sorted ascending by Order.
// The sort is stable: equal orders keep their original position.
func (p Page) SortedSections() []Section {
	out := make([]Section, len(p.Sections))
	copy(out, p.Sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// ColorSettings holds the project palette as hex color strings.
type ColorSettings struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// TypographySettings holds font family and base sizes. Sizes are UI-enforced
// clamps (heading 24-72, body 14-24), not hard invariants.
type TypographySettings struct {
	FontFamily  string `json:"fontFamily"`
	HeadingSize int    `json:"headingSize"`
	BodySize    int    `json:"bodySize"`
}

// LayoutSettings holds section spacing and the container width token.
type LayoutSettings struct {
	Spacing        int    `json:"spacing"`
	ContainerWidth string `json:"containerWidth"`
}

// AnimationSettings toggles scroll/hover animation behavior.
// Speed is one of slow, normal, fast.
type AnimationSettings struct {
	ScrollAnimations bool   `json:"scrollAnimations"`
	HoverEffects     bool   `json:"hoverEffects"`
	Speed            string `json:"speed"`
}

// Settings are project-level style settings shared by every page.
type Settings struct {
	Colors     ColorSettings      `json:"colors"`
	Typography TypographySettings `json:"typography"`
	Layout     LayoutSettings     `json:"layout"`
	Animations AnimationSettings  `json:"animations"`
}

// DefaultSettings returns the builder defaults for a fresh project.
func DefaultSettings() Settings {
	return Settings{
		Colors:     ColorSettings{Primary: "#6366F1", Secondary: "#8B5CF6", Accent: "#10B981"},
		Typography: TypographySettings{FontFamily: "inter", HeadingSize: 48, BodySize: 16},
		Layout:     LayoutSettings{Spacing: 16, ContainerWidth: "6xl"},
		Animations: AnimationSettings{ScrollAnimations: true, HoverEffects: false, Speed: "normal"},
	}
}

// SettingsPatch is a partial settings update. Each top-level group merges
// independently; groups left nil are untouched.
type SettingsPatch struct {
	Colors     *ColorsPatch     `json:"colors,omitempty"`
	Typography *TypographyPatch `json:"typography,omitempty"`
	Layout     *LayoutPatch     `json:"layout,omitempty"`
	Animations *AnimationsPatch `json:"animations,omitempty"`
}

// ColorsPatch updates palette fields; empty strings keep the current value.
type ColorsPatch struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Accent    string `json:"accent,omitempty"`
}

// TypographyPatch updates typography fields; zero values keep the current value.
type TypographyPatch struct {
	FontFamily  string `json:"fontFamily,omitempty"`
	HeadingSize int    `json:"headingSize,omitempty"`
	BodySize    int    `json:"bodySize,omitempty"`
}

// LayoutPatch updates layout fields; zero values keep the current value.
type LayoutPatch struct {
	Spacing        int    `json:"spacing,omitempty"`
	ContainerWidth string `json:"containerWidth,omitempty"`
}

// AnimationsPatch updates animation fields. Booleans are pointers so "false"
// can be expressed without clobbering unspecified fields.
type AnimationsPatch struct {
	ScrollAnimations *bool  `json:"scrollAnimations,omitempty"`
	HoverEffects     *bool  `json:"hoverEffects,omitempty"`
	Speed            string `json:"speed,omitempty"`
}

// Apply merges the patch into the settings, group by group.
func (s *Settings) Apply(p SettingsPatch) {
	if p.Colors != nil {
		if p.Colors.Primary != "" {
			s.Colors.Primary = p.Colors.Primary
		}
		if p.Colors.Secondary != "" {
			s.Colors.Secondary = p.Colors.Secondary
		}
		if p.Colors.Accent != "" {
			s.Colors.Accent = p.Colors.Accent
		}
	}
	if p.Typography != nil {
		if p.Typography.FontFamily != "" {
			s.Typography.FontFamily = p.Typography.FontFamily
		}
		if p.Typography.HeadingSize != 0 {
			s.Typography.HeadingSize = p.Typography.HeadingSize
		}
		if p.Typography.BodySize != 0 {
			s.Typography.BodySize = p.Typography.BodySize
		}
	}
	if p.Layout != nil {
		if p.Layout.Spacing != 0 {
			s.Layout.Spacing = p.Layout.Spacing
		}
		if p.Layout.ContainerWidth != "" {
			s.Layout.ContainerWidth = p.Layout.ContainerWidth
		}
	}
	if p.Animations != nil {
		if p.Animations.ScrollAnimations != nil {
			s.Animations.ScrollAnimations = *p.Animations.ScrollAnimations
		}
		if p.Animations.HoverEffects != nil {
			s.Animations.HoverEffects = *p.Animations.HoverEffects
		}
		if p.Animations.Speed != "" {
			s.Animations.Speed = p.Animations.Speed
		}
	}
}

// Project is the full website being edited: pages, settings, metadata.
// Pages are the authoritative content representation. Sections is a legacy
// mirror of the home page's sections, kept only for read-compatibility with
// older persisted documents.
type Project struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId,omitempty"`
	Name        string    `json:"name"`
	TemplateID  string    `json:"templateId,omitempty"`
	Pages       []Page    `json:"pages"`
	Sections    []Section `json:"sections"`
	Settings    Settings  `json:"settings"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// Clone returns a deep copy of the project document.
func (p Project) Clone() Project {
	c := p
	c.Pages = make([]Page, len(p.Pages))
	for i, pg := range p.Pages {
		c.Pages[i] = pg.Clone()
	}
	c.Sections = make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		c.Sections[i] = s.Clone()
	}
	return c
}

// HomePage returns the page marked as home, or nil if no pages exist.
func (p *Project) HomePage() *Page {
	for i := range p.Pages {
		if p.Pages[i].IsHomePage {
			return &p.Pages[i]
		}
	}
	if len(p.Pages) > 0 {
		return &p.Pages[0]
	}
	return nil
}

// PageByID returns the page with the given id, or nil.
func (p *Project) PageByID(id string) *Page {
	for i := range p.Pages {
		if p.Pages[i].ID == id {
			return &p.Pages[i]
		}
	}
	return nil
}

// FindSection locates a section by id across all pages. It returns the owning
// page and the section's index within it, or (nil, -1) when absent.
func (p *Project) FindSection(id string) (*Page, int) {
	for i := range p.Pages {
		for j := range p.Pages[i].Sections {
			if p.Pages[i].Sections[j].ID == id {
				return &p.Pages[i], j
			}
		}
	}
	return nil, -1
}

// SectionIDs returns every section id across all pages, in page order.
func (p *Project) SectionIDs() []string {
	var ids []string
	for i := range p.Pages {
		for j := range p.Pages[i].Sections {
			ids = append(ids, p.Pages[i].Sections[j].ID)
		}
	}
	return ids
}

// Template is a read-only catalog entry used to seed new projects.
type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Sections    []Section `json:"sections"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// MintID returns a fresh opaque identifier for sections, pages and projects.
func MintID() string { return uuid.NewString() }
