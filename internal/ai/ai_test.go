package ai

import (
	"strings"
	"testing"
)

func TestValidateContentRequest(t *testing.T) {
	good := ContentRequest{ContentType: ContentHeadline, BusinessContext: "bakery", Tone: "friendly"}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	cases := []ContentRequest{
		{ContentType: "poem", BusinessContext: "bakery"},
		{ContentType: ContentCTA, BusinessContext: "   "},
		{ContentType: ContentCTA, BusinessContext: "bakery", Tone: "sarcastic"},
	}
	for _, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("invalid request accepted: %+v", c)
		}
	}
	// empty tone defaults later, so it is valid
	if err := (ContentRequest{ContentType: ContentCTA, BusinessContext: "bakery"}).Validate(); err != nil {
		t.Fatalf("empty tone rejected: %v", err)
	}
}

func TestSystemPromptVariesByTypeAndTone(t *testing.T) {
	p := systemPrompt(ContentHeadline, "creative")
	if !strings.Contains(p, "headline") || !strings.Contains(p, "creative") {
		t.Fatalf("headline prompt wrong: %s", p)
	}
	if !strings.Contains(p, `"suggestions"`) {
		t.Fatal("prompt does not pin the JSON shape")
	}
	if !strings.Contains(systemPrompt(ContentCTA, ""), "professional") {
		t.Fatal("empty tone did not default to professional")
	}
}

func TestUserPromptIncludesContext(t *testing.T) {
	p := userPrompt(ContentRequest{
		ContentType:       ContentServices,
		BusinessContext:   "artisan bakery in Oldenburg",
		AdditionalContext: "family-owned since 1987",
	})
	for _, frag := range []string{"service offerings", "artisan bakery in Oldenburg", "family-owned since 1987"} {
		if !strings.Contains(p, frag) {
			t.Fatalf("prompt missing %q: %s", frag, p)
		}
	}
}

func TestParseSuggestions(t *testing.T) {
	got, err := parseSuggestions(`{"suggestions": ["a", "b", "c"]}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 3 || got[0] != "a" {
		t.Fatalf("suggestions = %v", got)
	}
}

func TestParseSuggestionsUnwrapsCodeFences(t *testing.T) {
	raw := "```json\n{\"suggestions\": [\"x\"]}\n```"
	got, err := parseSuggestions(raw)
	if err != nil {
		t.Fatalf("parse fenced: %v", err)
	}
	if len(got) != 1 || got[0] != "x" {
		t.Fatalf("suggestions = %v", got)
	}
}

func TestParseSuggestionsRejectsGarbage(t *testing.T) {
	if _, err := parseSuggestions("not json at all"); err == nil {
		t.Fatal("garbage accepted")
	}
}

func TestParseColorSchemeFillsDefaults(t *testing.T) {
	got := parseColorScheme(`{"primary": "#112233"}`)
	if got.Primary != "#112233" {
		t.Fatalf("primary = %s", got.Primary)
	}
	if got.Secondary != "#8B5CF6" || got.Accent != "#10B981" {
		t.Fatalf("missing fields not defaulted: %+v", got)
	}
}

func TestParseColorSchemeGarbageYieldsDefaults(t *testing.T) {
	if got := parseColorScheme("oops"); got != DefaultColorScheme() {
		t.Fatalf("garbage did not yield defaults: %+v", got)
	}
}

func TestDefaultColorSchemeMatchesBuilderDefaults(t *testing.T) {
	d := DefaultColorScheme()
	if d.Primary != "#6366F1" || d.Secondary != "#8B5CF6" || d.Accent != "#10B981" {
		t.Fatalf("defaults drifted: %+v", d)
	}
}
