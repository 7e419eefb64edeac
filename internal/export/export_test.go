package export

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sitebuilder/internal/domain"
)

func proofProject() *domain.Project {
	return &domain.Project{
		ID:       "p1",
		Name:     "Acme Studio",
		Settings: domain.DefaultSettings(),
		Pages: []domain.Page{
			{
				ID: "home", Name: "Home", Slug: "home", IsHomePage: true,
				Sections: []domain.Section{
					{ID: "s1", Type: domain.SectionHero, Order: 1, Config: &domain.HeroConfig{Title: "Welcome"}},
					{ID: "s2", Type: domain.SectionFooter, Order: 2, Config: &domain.FooterConfig{Copyright: "© Acme"}},
				},
			},
			{
				ID: "about", Name: "About", Slug: "about",
				Sections: []domain.Section{
					{ID: "s3", Type: domain.SectionAbout, Order: 1, Config: &domain.AboutConfig{Title: "Us"}},
				},
			},
		},
	}
}

func zipEntries(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	defer func() { _ = r.Close() }()
	out := map[string]string{}
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		out[f.Name] = string(b)
	}
	return out
}

func TestStaticSiteArchive(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site.zip")
	got, err := StaticSite(proofProject(), out)
	if err != nil {
		t.Fatalf("StaticSite: %v", err)
	}
	entries := zipEntries(t, got)
	index, ok := entries["index.html"]
	if !ok {
		t.Fatalf("index.html missing, entries: %v", keys(entries))
	}
	if !strings.Contains(index, "Welcome") || !strings.Contains(index, "styles.css") {
		t.Fatalf("index.html incomplete:\n%s", index)
	}
	if _, ok := entries["about.html"]; !ok {
		t.Fatal("about.html missing")
	}
	if !strings.Contains(entries["styles.css"], "--color-primary:#6366F1") {
		t.Fatal("stylesheet missing settings")
	}
}

func TestReactScaffold(t *testing.T) {
	out := filepath.Join(t.TempDir(), "react.zip")
	got, err := ReactScaffold(proofProject(), out)
	if err != nil {
		t.Fatalf("ReactScaffold: %v", err)
	}
	entries := zipEntries(t, got)
	if !strings.Contains(entries["package.json"], `"react"`) {
		t.Fatal("package.json missing react dependency")
	}
	home, ok := entries["src/pages/Home.jsx"]
	if !ok {
		t.Fatalf("Home.jsx missing, entries: %v", keys(entries))
	}
	if !strings.Contains(home, "Welcome") || !strings.Contains(home, "export default function Home") {
		t.Fatalf("Home.jsx incomplete:\n%s", home)
	}
	if _, ok := entries["src/pages/About.jsx"]; !ok {
		t.Fatal("About.jsx missing")
	}
}

func TestWordPressTheme(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wp.zip")
	got, err := WordPressTheme(proofProject(), out)
	if err != nil {
		t.Fatalf("WordPressTheme: %v", err)
	}
	entries := zipEntries(t, got)
	if !strings.Contains(entries["style.css"], "Theme Name: Acme Studio") {
		t.Fatal("theme header missing")
	}
	if !strings.Contains(entries["index.php"], "get_header()") || !strings.Contains(entries["index.php"], "Welcome") {
		t.Fatalf("index.php incomplete:\n%s", entries["index.php"])
	}
	if _, ok := entries["page-about.php"]; !ok {
		t.Fatal("page-about.php missing")
	}
}

func TestPageProofPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "proof.pdf")
	got, err := PageProofPDF(proofProject(), out)
	if err != nil {
		t.Fatalf("PageProofPDF: %v", err)
	}
	b, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !strings.HasPrefix(string(b), "%PDF") {
		t.Fatal("output is not a PDF")
	}
}

func TestExportDispatchAndUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	got, err := Export(proofProject(), FormatHTML, dir, "")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if filepath.Dir(got) != dir {
		t.Fatalf("relative output not placed in dir: %s", got)
	}
	if !strings.HasSuffix(got, "acme-studio-html.zip") {
		t.Fatalf("default name wrong: %s", got)
	}
	got, err = Export(proofProject(), FormatStatic, dir, "aliased")
	if err != nil {
		t.Fatalf("Export static: %v", err)
	}
	if !strings.HasSuffix(got, "aliased.zip") {
		t.Fatalf("static alias output: %s", got)
	}
	if _, err := Export(proofProject(), "tarball", dir, ""); err == nil {
		t.Fatal("unknown format accepted")
	}
	if _, err := Export(nil, FormatHTML, dir, ""); err == nil {
		t.Fatal("nil project accepted")
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
