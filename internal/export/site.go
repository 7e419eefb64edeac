/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export turns a project document into downloadable artifacts: a
// static HTML site archive, framework scaffolds, and a PDF page proof.
// Archives are plain ZIP files; every export renders through the render
// package so the output matches the editor preview.
package export

import (
	"archive/zip"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"sitebuilder/internal/domain"
	"sitebuilder/internal/render"
)

// Formats supported by Export. "html" is accepted as an alias for static.
const (
	FormatStatic    = "static"
	FormatHTML      = "html"
	FormatReact     = "react"
	FormatWordPress = "wordpress"
	FormatPDF       = "pdf"
)

// Export writes the project in the given format and returns the output path.
// Relative outPath values land in dir (usually the project's exports folder).
func Export(doc *domain.Project, format, dir, outPath string) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("nil project")
	}
	switch format {
	case FormatStatic, FormatHTML:
		return StaticSite(doc, resolveOut(dir, outPath, doc, "html", ".zip"))
	case FormatReact:
		return ReactScaffold(doc, resolveOut(dir, outPath, doc, "react", ".zip"))
	case FormatWordPress:
		return WordPressTheme(doc, resolveOut(dir, outPath, doc, "wordpress", ".zip"))
	case FormatPDF:
		return PageProofPDF(doc, resolveOut(dir, outPath, doc, "proof", ".pdf"))
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

func resolveOut(dir, outPath string, doc *domain.Project, suffix, ext string) string {
	if outPath == "" {
		outPath = fmt.Sprintf("%s-%s%s", slugOrSite(doc.Name), suffix, ext)
	}
	if !strings.HasSuffix(strings.ToLower(outPath), ext) {
		outPath += ext
	}
	if !filepath.IsAbs(outPath) && dir != "" {
		outPath = filepath.Join(dir, outPath)
	}
	return outPath
}

func slugOrSite(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return "site"
	}
	return s
}

// StaticSite writes a ZIP archive holding one HTML file per page plus a
// shared stylesheet. The home page is index.html; others use their slug.
func StaticSite(doc *domain.Project, outPath string) (string, error) {
	zw, f, err := createZip(outPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if err := addZipFile(zw, "styles.css", []byte(render.Stylesheet(doc.Settings))); err != nil {
		return "", fmt.Errorf("zip add stylesheet: %w", err)
	}
	for _, pg := range doc.Pages {
		name := pg.Slug + ".html"
		if pg.IsHomePage {
			name = "index.html"
		}
		if err := addZipFile(zw, name, []byte(pageHTML(doc, pg))); err != nil {
			return "", fmt.Errorf("zip add %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("close zip: %w", err)
	}
	return outPath, nil
}

// pageHTML renders one page as a standalone document linking the shared
// stylesheet. Zoom is always 100 in exports.
func pageHTML(doc *domain.Project, pg domain.Page) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\"/>\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
	fmt.Fprintf(&b, "<title>%s — %s</title>\n", html.EscapeString(doc.Name), html.EscapeString(pg.Name))
	b.WriteString("<link rel=\"stylesheet\" href=\"styles.css\"/>\n")
	b.WriteString("</head>\n<body>\n")
	_ = render.WriteHTML(&b, render.Page(doc, pg.ID, render.Options{Device: render.DeviceWide, Zoom: 100}))
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

func createZip(outPath string) (*zip.Writer, *os.File, error) {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("ensure out dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, fmt.Errorf("create archive: %w", err)
	}
	return zip.NewWriter(f), f, nil
}

func addZipFile(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
