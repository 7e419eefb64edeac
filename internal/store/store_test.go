package store

import (
	"testing"
	"time"

	"sitebuilder/internal/catalog"
	"sitebuilder/internal/domain"
	"sitebuilder/internal/render"
)

func newTestStore() *Store {
	st := New()
	// no coalescing so every mutation is its own undo step
	st.hist.cfg.MinInterval = 0
	return st
}

func openProject(t *testing.T, st *Store, sections ...domain.Section) {
	t.Helper()
	st.SetCurrentProject(domain.Project{
		ID:       "p1",
		Name:     "Test",
		Settings: domain.DefaultSettings(),
		Pages: []domain.Page{{
			ID: "home", Name: "Home", Slug: "home",
			Sections: sections, IsHomePage: true,
		}},
	})
}

func homeSections(t *testing.T, st *Store) []domain.Section {
	t.Helper()
	doc, ok := st.Project()
	if !ok {
		t.Fatal("no project open")
	}
	hp := doc.HomePage()
	if hp == nil {
		t.Fatal("no home page")
	}
	return hp.Sections
}

func TestSectionIDsStayUniqueAcrossMutations(t *testing.T) {
	st := newTestStore()
	openProject(t, st)
	for i := 0; i < 5; i++ {
		st.AddSection(domain.Section{Type: domain.SectionCustom, Config: &domain.CustomConfig{}})
	}
	secs := homeSections(t, st)
	st.RemoveSection(secs[2].ID)
	st.DuplicateSection(secs[0].ID)
	st.DuplicateSection(secs[4].ID)

	seen := map[string]bool{}
	doc, _ := st.Project()
	for _, id := range doc.SectionIDs() {
		if id == "" {
			t.Fatal("empty section id")
		}
		if seen[id] {
			t.Fatalf("duplicate section id %q", id)
		}
		seen[id] = true
	}
	if len(seen) != 6 {
		t.Fatalf("section count = %d, want 6", len(seen))
	}
}

func TestAddSectionAssignsOrderOnZeroOrCollision(t *testing.T) {
	st := newTestStore()
	openProject(t, st,
		domain.Section{ID: "a", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{}},
		domain.Section{ID: "b", Type: domain.SectionHero, Order: 2, Config: &domain.HeroConfig{}},
	)
	st.AddSection(domain.Section{ID: "c", Type: domain.SectionCustom, Config: &domain.CustomConfig{}})
	st.AddSection(domain.Section{ID: "d", Type: domain.SectionCustom, Order: 2, Config: &domain.CustomConfig{}})

	byID := map[string]int{}
	for _, s := range homeSections(t, st) {
		byID[s.ID] = s.Order
	}
	if byID["c"] != 3 {
		t.Fatalf("zero order assigned %d, want 3", byID["c"])
	}
	if byID["d"] != 4 {
		t.Fatalf("colliding order assigned %d, want 4", byID["d"])
	}
}

func TestAddSectionHonorsExplicitFreeOrder(t *testing.T) {
	st := newTestStore()
	openProject(t, st,
		domain.Section{ID: "a", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{}},
	)
	st.AddSection(domain.Section{ID: "x", Type: domain.SectionCustom, Order: 999, Config: &domain.CustomConfig{}})
	for _, s := range homeSections(t, st) {
		if s.ID == "x" && s.Order != 999 {
			t.Fatalf("explicit order changed to %d", s.Order)
		}
	}
}

func TestRemoveSectionMissingIDIsNoOp(t *testing.T) {
	st := newTestStore()
	openProject(t, st,
		domain.Section{ID: "a", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{}},
	)
	var fired int
	defer st.Subscribe(func() { fired++ })()
	st.RemoveSection("nope")
	if fired != 0 {
		t.Fatal("no-op removal notified subscribers")
	}
	if len(homeSections(t, st)) != 1 {
		t.Fatal("no-op removal changed the document")
	}
}

func TestDuplicateSectionInsertsIndependentCopyAfterSource(t *testing.T) {
	st := newTestStore()
	openProject(t, st,
		domain.Section{ID: "a", Type: domain.SectionHero, Order: 1, Config: &domain.HeroConfig{Title: "Original", Features: []string{"f1"}}},
		domain.Section{ID: "b", Type: domain.SectionFooter, Order: 2, Config: &domain.FooterConfig{}},
	)
	st.DuplicateSection("a")

	secs := homeSections(t, st)
	if len(secs) != 3 {
		t.Fatalf("section count = %d, want 3", len(secs))
	}
	if secs[0].ID != "a" || secs[2].ID != "b" {
		t.Fatalf("copy not inserted between source and successor: %v %v %v", secs[0].ID, secs[1].ID, secs[2].ID)
	}
	cp := secs[1]
	if cp.ID == "a" || cp.ID == "" {
		t.Fatalf("copy id = %q", cp.ID)
	}
	// orders re-integerized to 1..n
	for i, s := range secs {
		if s.Order != i+1 {
			t.Fatalf("order[%d] = %d, want %d", i, s.Order, i+1)
		}
	}
	if st.SelectedSection() != cp.ID {
		t.Fatal("copy not selected")
	}

	// mutating the copy must not touch the source
	hero := cp.Config.(*domain.HeroConfig)
	hero.Title = "Changed"
	hero.Features[0] = "changed"
	src := homeSections(t, st)[0].Config.(*domain.HeroConfig)
	if src.Title != "Original" || src.Features[0] != "f1" {
		t.Fatalf("source mutated through copy: %+v", src)
	}
}

func TestSetCurrentProjectNormalizesLegacyDocument(t *testing.T) {
	st := newTestStore()
	st.SetCurrentProject(domain.Project{
		ID: "legacy",
		Sections: []domain.Section{
			{ID: "a", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{}},
		},
	})
	doc, ok := st.Project()
	if !ok {
		t.Fatal("no project")
	}
	if len(doc.Pages) != 1 || !doc.Pages[0].IsHomePage {
		t.Fatalf("legacy document not wrapped: %+v", doc.Pages)
	}
	if st.CurrentPageID() != doc.Pages[0].ID {
		t.Fatal("current page not set to home")
	}
}

func TestProjectReturnsDeepCopy(t *testing.T) {
	st := newTestStore()
	openProject(t, st,
		domain.Section{ID: "a", Type: domain.SectionHero, Order: 1, Config: &domain.HeroConfig{Title: "T"}},
	)
	doc, _ := st.Project()
	doc.Pages[0].Sections[0].Config.(*domain.HeroConfig).Title = "hacked"
	again, _ := st.Project()
	if again.Pages[0].Sections[0].Config.(*domain.HeroConfig).Title != "T" {
		t.Fatal("getter leaked internal state")
	}
}

func TestAddPageSlugUniqueAndHomeRules(t *testing.T) {
	st := newTestStore()
	openProject(t, st)
	st.AddPage(domain.Page{Name: "About", Slug: "about"})
	st.AddPage(domain.Page{Name: "About 2", Slug: "about", IsHomePage: true})

	doc, _ := st.Project()
	if len(doc.Pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(doc.Pages))
	}
	if doc.Pages[2].Slug != "about-2" {
		t.Fatalf("colliding slug = %q, want about-2", doc.Pages[2].Slug)
	}
	var homes int
	for _, pg := range doc.Pages {
		if pg.IsHomePage {
			homes++
		}
	}
	if homes != 1 || !doc.Pages[0].IsHomePage {
		t.Fatalf("home flag stolen: %+v", doc.Pages)
	}
}

func TestZoomClampedToBounds(t *testing.T) {
	st := newTestStore()
	st.SetZoom(10)
	if got := st.Zoom(); got != ZoomMin {
		t.Fatalf("zoom = %d, want %d", got, ZoomMin)
	}
	st.SetZoom(500)
	if got := st.Zoom(); got != ZoomMax {
		t.Fatalf("zoom = %d, want %d", got, ZoomMax)
	}
	st.SetZoom(125)
	if got := st.Zoom(); got != 125 {
		t.Fatalf("zoom = %d, want 125", got)
	}
}

func TestSubscribeNotifySynchronousAndUnsubscribe(t *testing.T) {
	st := newTestStore()
	openProject(t, st)
	var calls int
	unsub := st.Subscribe(func() { calls++ })
	st.SetZoom(80)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	unsub()
	st.SetZoom(90)
	if calls != 1 {
		t.Fatalf("calls after unsubscribe = %d, want 1", calls)
	}
}

func TestListenerMayReadStoreWithoutDeadlock(t *testing.T) {
	st := newTestStore()
	openProject(t, st)
	done := make(chan struct{})
	st.Subscribe(func() {
		st.Project() // re-entrant read during notify
		close(done)
	})
	st.SetZoom(75)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener deadlocked reading the store")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	st := newTestStore()
	openProject(t, st)
	st.AddSection(domain.Section{ID: "a", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{}})
	st.AddSection(domain.Section{ID: "b", Type: domain.SectionHero, Order: 2, Config: &domain.HeroConfig{}})

	if !st.Undo() {
		t.Fatal("undo failed")
	}
	if n := len(homeSections(t, st)); n != 1 {
		t.Fatalf("after undo: %d sections, want 1", n)
	}
	if !st.Redo() {
		t.Fatal("redo failed")
	}
	if n := len(homeSections(t, st)); n != 2 {
		t.Fatalf("after redo: %d sections, want 2", n)
	}
}

func TestNewMutationClearsRedo(t *testing.T) {
	st := newTestStore()
	openProject(t, st)
	st.AddSection(domain.Section{ID: "a", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{}})
	st.Undo()
	st.AddSection(domain.Section{ID: "b", Type: domain.SectionHero, Order: 1, Config: &domain.HeroConfig{}})
	if st.Redo() {
		t.Fatal("redo survived a new mutation")
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	st := newTestStore()
	openProject(t, st)
	if st.Undo() {
		t.Fatal("undo with empty history reported success")
	}
}

func TestOpeningProjectClearsHistory(t *testing.T) {
	st := newTestStore()
	openProject(t, st)
	st.AddSection(domain.Section{ID: "a", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{}})
	openProject(t, st)
	if st.Undo() {
		t.Fatal("history leaked across documents")
	}
}

func TestUpdateProjectSettingsMergesGroups(t *testing.T) {
	st := newTestStore()
	openProject(t, st)
	off := false
	st.UpdateProjectSettings(domain.SettingsPatch{
		Colors:     &domain.ColorsPatch{Primary: "#000000"},
		Animations: &domain.AnimationsPatch{ScrollAnimations: &off},
	})
	doc, _ := st.Project()
	s := doc.Settings
	if s.Colors.Primary != "#000000" {
		t.Fatalf("primary = %q", s.Colors.Primary)
	}
	if s.Colors.Secondary != "#8B5CF6" {
		t.Fatalf("untouched secondary changed: %q", s.Colors.Secondary)
	}
	if s.Animations.ScrollAnimations {
		t.Fatal("pointer false not applied")
	}
	if s.Typography.HeadingSize != 48 {
		t.Fatal("untouched group changed")
	}
}

func TestHistoryCoalescesBursts(t *testing.T) {
	st := New() // default 250ms coalescing
	openProject(t, st)
	for i := 0; i < 3; i++ {
		st.AddSection(domain.Section{Type: domain.SectionCustom, Config: &domain.CustomConfig{}})
	}
	if !st.Undo() {
		t.Fatal("undo failed")
	}
	if n := len(homeSections(t, st)); n != 0 {
		t.Fatalf("burst did not undo as one step: %d sections left", n)
	}
}

func TestTemplateSeedThenAddSectionRendersLast(t *testing.T) {
	st := newTestStore()
	p, err := catalog.Builtin().NewProjectFromTemplate("portfolio-3", "Portfolio", "")
	if err != nil {
		t.Fatalf("seed from template: %v", err)
	}
	st.SetCurrentProject(p)

	st.AddSection(domain.Section{Type: domain.SectionCustom, Order: 999, Config: &domain.CustomConfig{Title: "Extra"}})

	secs := homeSections(t, st)
	if len(secs) != 6 {
		t.Fatalf("sections = %d, want 6", len(secs))
	}
	doc, _ := st.Project()
	sorted := doc.HomePage().SortedSections()
	last := sorted[len(sorted)-1]
	if last.Type != domain.SectionCustom {
		t.Fatalf("last rendered section type = %q", last.Type)
	}
	node := render.Page(&doc, doc.HomePage().ID, render.Options{Device: render.DeviceWide, Zoom: 100})
	if len(node.Children) != 6 {
		t.Fatalf("rendered sections = %d", len(node.Children))
	}
	gotLast := node.Children[len(node.Children)-1]
	if gotLast.Attrs["data-section-id"] != last.ID {
		t.Fatalf("last rendered id = %q, want %q", gotLast.Attrs["data-section-id"], last.ID)
	}
}
