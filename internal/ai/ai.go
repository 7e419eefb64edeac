/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package ai generates website copy and color schemes from a short business
// description. Requests carry a content type and a tone; responses are
// suggestion lists the editor offers to the user. Color generation always
// yields a usable palette: on any failure the builder defaults come back
// instead of an error.
package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"sitebuilder/internal/domain"
)

// Content types the generator understands.
const (
	ContentHeadline    = "headline"
	ContentDescription = "description"
	ContentServices    = "services"
	ContentCTA         = "cta"
)

// Tones accepted in content requests.
var Tones = []string{"professional", "friendly", "creative", "authoritative"}

// ContentRequest describes what copy to generate.
type ContentRequest struct {
	ContentType       string `json:"contentType"`
	BusinessContext   string `json:"businessContext"`
	Tone              string `json:"tone"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// Validate checks the request fields against the known sets.
func (r ContentRequest) Validate() error {
	switch r.ContentType {
	case ContentHeadline, ContentDescription, ContentServices, ContentCTA:
	default:
		return fmt.Errorf("unknown content type %q", r.ContentType)
	}
	if strings.TrimSpace(r.BusinessContext) == "" {
		return fmt.Errorf("business context is required")
	}
	if r.Tone != "" && !validTone(r.Tone) {
		return fmt.Errorf("unknown tone %q", r.Tone)
	}
	return nil
}

func validTone(t string) bool {
	for _, v := range Tones {
		if t == v {
			return true
		}
	}
	return false
}

// ContentResponse carries the generated suggestions.
type ContentResponse struct {
	Suggestions []string `json:"suggestions"`
	ContentType string   `json:"contentType"`
}

// ColorScheme is a generated palette of hex colors.
type ColorScheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// DefaultColorScheme returns the builder default palette, used whenever
// generation fails or returns incomplete data.
func DefaultColorScheme() ColorScheme {
	d := domain.DefaultSettings().Colors
	return ColorScheme{Primary: d.Primary, Secondary: d.Secondary, Accent: d.Accent}
}

// systemPrompt returns the instruction for the model per content type. The
// model is told to answer with a JSON object holding a "suggestions" array.
func systemPrompt(contentType, tone string) string {
	if tone == "" {
		tone = "professional"
	}
	switch contentType {
	case ContentHeadline:
		return fmt.Sprintf(`You are an expert copywriter specializing in compelling headlines. Generate 3 different headline variations that are attention-grabbing and %s. Respond with JSON in this format: { "suggestions": ["headline1", "headline2", "headline3"] }`, tone)
	case ContentDescription:
		return fmt.Sprintf(`You are an expert content writer. Generate 3 different description variations that are engaging and %s. Each should be 2-3 sentences long. Respond with JSON in this format: { "suggestions": ["description1", "description2", "description3"] }`, tone)
	case ContentServices:
		return fmt.Sprintf(`You are an expert at describing business services. Generate 3 different service offerings that would be relevant for this business. Each should have a title and brief description. Be %s in tone. Respond with JSON in this format: { "suggestions": ["Service Name: Description", "Service Name: Description", "Service Name: Description"] }`, tone)
	case ContentCTA:
		return fmt.Sprintf(`You are an expert at creating compelling call-to-action text. Generate 3 different CTA button text variations that are action-oriented and %s. Keep them short (2-4 words). Respond with JSON in this format: { "suggestions": ["cta1", "cta2", "cta3"] }`, tone)
	default:
		return ""
	}
}

const colorSystemPrompt = `You are a color theory expert. Based on the business context, suggest a professional color scheme with primary, secondary, and accent colors. Consider psychology of colors and brand perception. Respond with JSON in this format: { "primary": "#hexcode", "secondary": "#hexcode", "accent": "#hexcode" }`

// userPrompt builds the per-request prompt text.
func userPrompt(r ContentRequest) string {
	p := fmt.Sprintf("Create %s for a business with this context: %s.", promptNoun(r.ContentType), r.BusinessContext)
	if r.AdditionalContext != "" {
		p += " " + r.AdditionalContext
	}
	return p
}

func promptNoun(contentType string) string {
	switch contentType {
	case ContentHeadline:
		return "headlines"
	case ContentDescription:
		return "descriptions"
	case ContentServices:
		return "service offerings"
	case ContentCTA:
		return "call-to-action text"
	default:
		return contentType
	}
}

// parseSuggestions decodes a model reply into a suggestion list. Replies
// wrapped in markdown code fences are unwrapped first.
func parseSuggestions(raw string) ([]string, error) {
	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &out); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}
	return out.Suggestions, nil
}

// parseColorScheme decodes a model reply into a palette. Missing fields fall
// back to the builder defaults field by field.
func parseColorScheme(raw string) ColorScheme {
	def := DefaultColorScheme()
	var out ColorScheme
	if err := json.Unmarshal([]byte(stripFences(raw)), &out); err != nil {
		return def
	}
	if out.Primary == "" {
		out.Primary = def.Primary
	}
	if out.Secondary == "" {
		out.Secondary = def.Secondary
	}
	if out.Accent == "" {
		out.Accent = def.Accent
	}
	return out
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
