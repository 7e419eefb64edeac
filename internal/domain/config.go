/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

// Section configs form a tagged union keyed by SectionType: one variant per
// type, each with its own optional-field struct. Missing optional fields mean
// "omit the dependent UI", never an error. Sections with an unrecognized type
// keep their raw config bytes so the document round-trips losslessly.

import (
	"encoding/json"
	"fmt"
)

// SectionConfig is the per-type configuration payload of a section.
type SectionConfig interface {
	// Clone returns an independently mutable deep copy.
	Clone() SectionConfig
	sectionConfig()
}

// HeaderConfig configures a navigation header.
type HeaderConfig struct {
	Title           string   `json:"title,omitempty"`
	Navigation      []string `json:"navigation,omitempty"`
	CTAButton       string   `json:"ctaButton,omitempty"`
	BackgroundImage string   `json:"backgroundImage,omitempty"`
	Style           string   `json:"style,omitempty"`
	Fixed           bool     `json:"fixed,omitempty"`
	Transparent     bool     `json:"transparent,omitempty"`
	SearchBar       bool     `json:"searchBar,omitempty"`
	CartIcon        bool     `json:"cartIcon,omitempty"`
}

// HeroConfig configures the lead banner.
type HeroConfig struct {
	Title              string   `json:"title,omitempty"`
	Subtitle           string   `json:"subtitle,omitempty"`
	CTAButtons         []string `json:"ctaButtons,omitempty"`
	BackgroundImage    string   `json:"backgroundImage,omitempty"`
	BackgroundGradient string   `json:"backgroundGradient,omitempty"`
	Layout             string   `json:"layout,omitempty"`
	Overlay            bool     `json:"overlay,omitempty"`
	Features           []string `json:"features,omitempty"`
	ProductHighlight   bool     `json:"productHighlight,omitempty"`
}

// AboutConfig configures an about/bio block.
type AboutConfig struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// ServiceItem is one offering inside a services section.
type ServiceItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Badge       string `json:"badge,omitempty"`
}

// ServicesConfig configures a services/features grid.
type ServicesConfig struct {
	Title    string        `json:"title,omitempty"`
	Subtitle string        `json:"subtitle,omitempty"`
	Layout   string        `json:"layout,omitempty"`
	Services []ServiceItem `json:"services,omitempty"`
}

// FooterConfig configures the page footer.
type FooterConfig struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	SocialLinks []string `json:"socialLinks,omitempty"`
	Copyright   string   `json:"copyright,omitempty"`
}

// CustomConfig is a free-form content block.
type CustomConfig struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// ProductItem is one product card inside a products section.
type ProductItem struct {
	Name  string `json:"name"`
	Price string `json:"price,omitempty"`
	Image string `json:"image,omitempty"`
	Badge string `json:"badge,omitempty"`
}

// ProductsConfig configures a product grid.
type ProductsConfig struct {
	Title    string        `json:"title,omitempty"`
	Layout   string        `json:"layout,omitempty"`
	Products []ProductItem `json:"products,omitempty"`
}

// TestimonialItem is one quote inside a testimonials section.
type TestimonialItem struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Text    string `json:"text,omitempty"`
	Rating  int    `json:"rating,omitempty"`
}

// TestimonialsConfig configures a testimonial list or carousel.
type TestimonialsConfig struct {
	Title        string            `json:"title,omitempty"`
	Layout       string            `json:"layout,omitempty"`
	Testimonials []TestimonialItem `json:"testimonials,omitempty"`
}

// UnknownConfig preserves the raw config of a section whose type has no
// rendering variant. The bytes round-trip unmodified.
type UnknownConfig struct {
	Raw json.RawMessage
}

func (c *HeaderConfig) sectionConfig()       {}
func (c *HeroConfig) sectionConfig()         {}
func (c *AboutConfig) sectionConfig()        {}
func (c *ServicesConfig) sectionConfig()     {}
func (c *FooterConfig) sectionConfig()       {}
func (c *CustomConfig) sectionConfig()       {}
func (c *ProductsConfig) sectionConfig()     {}
func (c *TestimonialsConfig) sectionConfig() {}
func (c *UnknownConfig) sectionConfig()      {}

func (c *HeaderConfig) Clone() SectionConfig {
	d := *c
	d.Navigation = append([]string(nil), c.Navigation...)
	return &d
}

func (c *HeroConfig) Clone() SectionConfig {
	d := *c
	d.CTAButtons = append([]string(nil), c.CTAButtons...)
	d.Features = append([]string(nil), c.Features...)
	return &d
}

func (c *AboutConfig) Clone() SectionConfig {
	d := *c
	d.Skills = append([]string(nil), c.Skills...)
	return &d
}

func (c *ServicesConfig) Clone() SectionConfig {
	d := *c
	d.Services = append([]ServiceItem(nil), c.Services...)
	return &d
}

func (c *FooterConfig) Clone() SectionConfig {
	d := *c
	d.SocialLinks = append([]string(nil), c.SocialLinks...)
	return &d
}

func (c *CustomConfig) Clone() SectionConfig {
	d := *c
	return &d
}

func (c *ProductsConfig) Clone() SectionConfig {
	d := *c
	d.Products = append([]ProductItem(nil), c.Products...)
	return &d
}

func (c *TestimonialsConfig) Clone() SectionConfig {
	d := *c
	d.Testimonials = append([]TestimonialItem(nil), c.Testimonials...)
	return &d
}

func (c *UnknownConfig) Clone() SectionConfig {
	return &UnknownConfig{Raw: append(json.RawMessage(nil), c.Raw...)}
}

// MarshalJSON emits the raw bytes unchanged.
func (c *UnknownConfig) MarshalJSON() ([]byte, error) {
	if len(c.Raw) == 0 {
		return []byte("{}"), nil
	}
	return c.Raw, nil
}

// UnmarshalJSON stores the raw bytes unchanged.
func (c *UnknownConfig) UnmarshalJSON(b []byte) error {
	c.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// NewConfig returns a zero config variant for the given type, or nil when the
// type has no dedicated variant.
func NewConfig(t SectionType) SectionConfig {
	switch t {
	case SectionHeader:
		return &HeaderConfig{}
	case SectionHero:
		return &HeroConfig{}
	case SectionAbout:
		return &AboutConfig{}
	case SectionServices:
		return &ServicesConfig{}
	case SectionFooter:
		return &FooterConfig{}
	case SectionCustom:
		return &CustomConfig{}
	case SectionProducts:
		return &ProductsConfig{}
	case SectionTestimonials:
		return &TestimonialsConfig{}
	default:
		return nil
	}
}

// sectionJSON mirrors Section on the wire with an undecoded config payload.
type sectionJSON struct {
	ID     string          `json:"id"`
	Type   SectionType     `json:"type"`
	Order  int             `json:"order"`
	Config json.RawMessage `json:"config"`
}

// UnmarshalJSON decodes the config payload into the variant selected by the
// type tag. Unknown types keep their raw config.
func (s *Section) UnmarshalJSON(b []byte) error {
	var sj sectionJSON
	if err := json.Unmarshal(b, &sj); err != nil {
		return fmt.Errorf("decode section: %w", err)
	}
	s.ID = sj.ID
	s.Type = sj.Type
	s.Order = sj.Order
	cfg := NewConfig(sj.Type)
	if cfg == nil {
		s.Config = &UnknownConfig{Raw: append(json.RawMessage(nil), sj.Config...)}
		return nil
	}
	if len(sj.Config) > 0 {
		if err := json.Unmarshal(sj.Config, cfg); err != nil {
			return fmt.Errorf("decode %s config: %w", sj.Type, err)
		}
	}
	s.Config = cfg
	return nil
}

// MarshalJSON encodes the config variant under the "config" key.
func (s Section) MarshalJSON() ([]byte, error) {
	cfg := s.Config
	if cfg == nil {
		cfg = &UnknownConfig{}
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode %s config: %w", s.Type, err)
	}
	return json.Marshal(sectionJSON{ID: s.ID, Type: s.Type, Order: s.Order, Config: raw})
}
