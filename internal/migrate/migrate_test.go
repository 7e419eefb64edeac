package migrate

import (
	"testing"

	"sitebuilder/internal/domain"
)

func legacyProject() domain.Project {
	return domain.Project{
		ID:   "p1",
		Name: "Legacy",
		Sections: []domain.Section{
			{ID: "A", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{Title: "A"}},
			{ID: "B", Type: domain.SectionHero, Order: 2, Config: &domain.HeroConfig{Title: "B"}},
		},
	}
}

func TestNormalizeWrapsLegacySectionsIntoHomePage(t *testing.T) {
	p := legacyProject()
	if !Normalize(&p) {
		t.Fatal("expected migration to be reported")
	}
	if len(p.Pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(p.Pages))
	}
	hp := p.Pages[0]
	if hp.ID != HomePageID || hp.Name != HomePageName || hp.Slug != HomePageSlug || !hp.IsHomePage {
		t.Fatalf("home page identity wrong: %+v", hp)
	}
	if len(hp.Sections) != 2 || hp.Sections[0].ID != "A" || hp.Sections[1].ID != "B" {
		t.Fatalf("sections not preserved: %+v", hp.Sections)
	}
	if hp.Sections[0].Order != 1 || hp.Sections[1].Order != 2 {
		t.Fatalf("orders not preserved: %+v", hp.Sections)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	p := legacyProject()
	Normalize(&p)
	once := p.Clone()
	if Normalize(&p) {
		t.Fatal("second run reported a migration")
	}
	if len(p.Pages) != len(once.Pages) {
		t.Fatalf("pages changed: %d vs %d", len(p.Pages), len(once.Pages))
	}
	for i := range p.Pages[0].Sections {
		a, b := p.Pages[0].Sections[i], once.Pages[0].Sections[i]
		if a.ID != b.ID || a.Order != b.Order {
			t.Fatalf("section %d changed: %+v vs %+v", i, a, b)
		}
	}
}

func TestNormalizeEnforcesSingleHomePage(t *testing.T) {
	p := domain.Project{Pages: []domain.Page{
		{ID: "a", Slug: "a", IsHomePage: true},
		{ID: "b", Slug: "b", IsHomePage: true},
		{ID: "c", Slug: "c"},
	}}
	Normalize(&p)
	var homes int
	for _, pg := range p.Pages {
		if pg.IsHomePage {
			homes++
		}
	}
	if homes != 1 || !p.Pages[0].IsHomePage {
		t.Fatalf("expected only first page home, got %+v", p.Pages)
	}
}

func TestNormalizeMarksFirstPageHomeWhenNoneMarked(t *testing.T) {
	p := domain.Project{Pages: []domain.Page{
		{ID: "a", Slug: "a"},
		{ID: "b", Slug: "b"},
	}}
	Normalize(&p)
	if !p.Pages[0].IsHomePage || p.Pages[1].IsHomePage {
		t.Fatalf("home marking wrong: %+v", p.Pages)
	}
}

func TestNormalizeRefreshesLegacyMirror(t *testing.T) {
	p := legacyProject()
	Normalize(&p)
	// edit the home page, then normalize again: mirror must follow
	p.Pages[0].Sections = append(p.Pages[0].Sections, domain.Section{
		ID: "C", Type: domain.SectionFooter, Order: 3, Config: &domain.FooterConfig{},
	})
	Normalize(&p)
	if len(p.Sections) != 3 || p.Sections[2].ID != "C" {
		t.Fatalf("legacy mirror stale: %+v", p.Sections)
	}
}

func TestNormalizeEmptyDocument(t *testing.T) {
	p := domain.Project{}
	if Normalize(&p) {
		t.Fatal("empty document reported migration")
	}
	if len(p.Pages) != 0 || p.Sections != nil {
		t.Fatalf("empty document mutated: %+v", p)
	}
}
