package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sitebuilder/internal/domain"
)

func sampleProject() domain.Project {
	return domain.Project{
		ID:       "p1",
		Name:     "Sample Site",
		Settings: domain.DefaultSettings(),
		Pages: []domain.Page{{
			ID: "home", Name: "Home", Slug: "home", IsHomePage: true,
			Sections: []domain.Section{
				{ID: "s1", Type: domain.SectionHero, Order: 1, Config: &domain.HeroConfig{Title: "Hi"}},
			},
		}},
	}
}

func TestInitSaveOpenRoundTrip(t *testing.T) {
	root := t.TempDir()
	ph, err := InitProject(root, sampleProject())
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	for _, d := range standardSubDirs {
		if _, err := os.Stat(filepath.Join(root, d)); err != nil {
			t.Fatalf("subdir %s missing: %v", d, err)
		}
	}
	got, err := Open(root)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got.Project.ID != "p1" || got.Project.Name != "Sample Site" {
		t.Fatalf("round trip lost identity: %+v", got.Project)
	}
	if len(got.Project.Pages) != 1 || len(got.Project.Pages[0].Sections) != 1 {
		t.Fatalf("round trip lost content: %+v", got.Project.Pages)
	}
	hero, ok := got.Project.Pages[0].Sections[0].Config.(*domain.HeroConfig)
	if !ok || hero.Title != "Hi" {
		t.Fatalf("config lost its type: %#v", got.Project.Pages[0].Sections[0].Config)
	}
	_ = ph
}

func TestSaveCreatesTimestampedBackup(t *testing.T) {
	root := t.TempDir()
	ph, err := InitProject(root, sampleProject())
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	ph.Project.Name = "Renamed"
	if err := Save(ph); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	ents, err := os.ReadDir(filepath.Join(root, BackupsDirName))
	if err != nil {
		t.Fatalf("read backups: %v", err)
	}
	var baks int
	for _, e := range ents {
		if strings.HasSuffix(e.Name(), ".bak") {
			baks++
		}
	}
	if baks == 0 {
		t.Fatal("no backup written on overwrite")
	}
}

func TestOpenFallsBackToBackupOnCorruptManifest(t *testing.T) {
	root := t.TempDir()
	ph, err := InitProject(root, sampleProject())
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	// second save creates a backup of the good manifest
	if err := Save(ph); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(ph.ManifestPath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupt manifest: %v", err)
	}
	got, err := Open(root)
	if err != nil {
		t.Fatalf("Open with backup: %v", err)
	}
	if got.Project.ID != "p1" {
		t.Fatalf("backup did not restore document: %+v", got.Project)
	}
}

func TestOpenFailsWithoutManifestOrBackup(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatal("expected error for empty directory")
	}
}

func TestOpenNormalizesLegacyDocument(t *testing.T) {
	root := t.TempDir()
	legacy := `{
	  "id": "old",
	  "name": "Legacy",
	  "sections": [
	    {"id": "a", "type": "header", "order": 1, "config": {"title": "Old"}}
	  ],
	  "settings": ` + defaultSettingsJSON(t) + `
	}`
	if err := os.WriteFile(filepath.Join(root, ManifestFileName), []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy manifest: %v", err)
	}
	ph, err := Open(root)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(ph.Project.Pages) != 1 || !ph.Project.Pages[0].IsHomePage {
		t.Fatalf("legacy document not wrapped into home page: %+v", ph.Project.Pages)
	}
	if len(ph.Project.Pages[0].Sections) != 1 || ph.Project.Pages[0].Sections[0].ID != "a" {
		t.Fatalf("legacy sections lost: %+v", ph.Project.Pages[0].Sections)
	}
}

func TestAutosaveCrashSnapshotWritesFile(t *testing.T) {
	root := t.TempDir()
	ph, err := InitProject(root, sampleProject())
	if err != nil {
		t.Fatalf("InitProject: %v", err)
	}
	path, err := AutosaveCrashSnapshot(ph)
	if err != nil {
		t.Fatalf("AutosaveCrashSnapshot: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if !strings.Contains(string(b), `"Sample Site"`) {
		t.Fatal("snapshot does not contain the document")
	}
}

func defaultSettingsJSON(t *testing.T) string {
	t.Helper()
	return `{
	  "colors": {"primary": "#6366F1", "secondary": "#8B5CF6", "accent": "#10B981"},
	  "typography": {"fontFamily": "inter", "headingSize": 48, "bodySize": 16},
	  "layout": {"spacing": 16, "containerWidth": "6xl"},
	  "animations": {"scrollAnimations": true, "hoverEffects": false, "speed": "normal"}
	}`
}
