package catalog

import (
	"testing"

	"sitebuilder/internal/domain"
)

func TestBuiltinContainsSeedTemplates(t *testing.T) {
	c := Builtin()
	for _, id := range []string{"business-1", "business-2", "business-3", "portfolio-3", "ecommerce-1"} {
		tpl, ok := c.ByID(id)
		if !ok {
			t.Fatalf("template %s missing", id)
		}
		if len(tpl.Sections) == 0 {
			t.Fatalf("template %s has no sections", id)
		}
	}
	if len(c.All()) != 17 {
		t.Fatalf("catalog size = %d, want 17", len(c.All()))
	}
}

func TestByCategory(t *testing.T) {
	c := Builtin()
	biz := c.ByCategory("business")
	if len(biz) != 6 {
		t.Fatalf("business templates = %d, want 6", len(biz))
	}
	for _, tpl := range biz {
		if tpl.Category != "business" {
			t.Fatalf("wrong category in result: %+v", tpl)
		}
	}
}

func TestNewProjectFromTemplateMintsFreshIDs(t *testing.T) {
	c := Builtin()
	p1, err := c.NewProjectFromTemplate("portfolio-3", "Site A", "u1")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	p2, err := c.NewProjectFromTemplate("portfolio-3", "Site B", "u1")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	tpl, _ := c.ByID("portfolio-3")
	seen := map[string]bool{}
	for _, s := range tpl.Sections {
		seen[s.ID] = true
	}
	for _, id := range append(p1.SectionIDs(), p2.SectionIDs()...) {
		if seen[id] {
			t.Fatalf("section id %q reused across seedings", id)
		}
		seen[id] = true
	}
}

func TestNewProjectFromTemplateAssignsHomePageAndOrders(t *testing.T) {
	c := Builtin()
	p, err := c.NewProjectFromTemplate("business-1", "Biz", "u1")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(p.Pages) != 1 || !p.Pages[0].IsHomePage || p.Pages[0].Slug != "home" {
		t.Fatalf("home page wrong: %+v", p.Pages)
	}
	secs := p.Pages[0].SortedSections()
	for i, s := range secs {
		if s.Order != i+1 {
			t.Fatalf("order[%d] = %d, want %d", i, s.Order, i+1)
		}
	}
	if p.Settings != domain.DefaultSettings() {
		t.Fatalf("settings not defaulted: %+v", p.Settings)
	}
	if len(p.Sections) != len(secs) {
		t.Fatal("legacy mirror not seeded")
	}
}

func TestNewProjectFromTemplateMutationsDoNotTouchCatalog(t *testing.T) {
	c := Builtin()
	p, err := c.NewProjectFromTemplate("business-1", "Biz", "u1")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	p.Pages[0].Sections[0].Config.(*domain.HeaderConfig).Title = "hacked"
	tpl, _ := c.ByID("business-1")
	if tpl.Sections[0].Config.(*domain.HeaderConfig).Title != "Your Company Name" {
		t.Fatal("catalog template mutated through seeded project")
	}
}

func TestNewProjectFromBlankTemplate(t *testing.T) {
	c := Builtin()
	p, err := c.NewProjectFromTemplate("blank", "Empty", "u1")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(p.Pages) != 1 || len(p.Pages[0].Sections) != 0 {
		t.Fatalf("blank project not empty: %+v", p.Pages)
	}
}

func TestNewProjectFromUnknownTemplate(t *testing.T) {
	if _, err := Builtin().NewProjectFromTemplate("nope", "X", "u1"); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
