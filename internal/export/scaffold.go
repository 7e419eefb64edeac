/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"strings"

	"sitebuilder/internal/domain"
	"sitebuilder/internal/render"
)

// ReactScaffold writes a ZIP holding a minimal React project whose pages
// embed the rendered markup. It is a starting point for hand-off, not a
// build artifact.
func ReactScaffold(doc *domain.Project, outPath string) (string, error) {
	zw, f, err := createZip(outPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	files := map[string]string{
		"package.json":  reactPackageJSON(doc.Name),
		"src/index.jsx": reactIndex(doc),
		"src/site.css":  render.Stylesheet(doc.Settings),
		"README.md":     scaffoldReadme(doc.Name, "React"),
	}
	for _, pg := range doc.Pages {
		files[fmt.Sprintf("src/pages/%s.jsx", componentName(pg))] = reactPage(doc, pg)
	}
	for name, content := range files {
		if err := addZipFile(zw, name, []byte(content)); err != nil {
			return "", fmt.Errorf("zip add %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("close zip: %w", err)
	}
	return outPath, nil
}

func reactPackageJSON(name string) string {
	return fmt.Sprintf(`{
  "name": %q,
  "private": true,
  "version": "0.1.0",
  "dependencies": {
    "react": "^18.3.0",
    "react-dom": "^18.3.0"
  }
}
`, slugOrSite(name))
}

func reactIndex(doc *domain.Project) string {
	var b strings.Builder
	b.WriteString("import React from \"react\";\n")
	b.WriteString("import { createRoot } from \"react-dom/client\";\n")
	b.WriteString("import \"./site.css\";\n")
	home := doc.HomePage()
	if home != nil {
		fmt.Fprintf(&b, "import %s from \"./pages/%s\";\n", componentName(*home), componentName(*home))
		fmt.Fprintf(&b, "\ncreateRoot(document.getElementById(\"root\")).render(<%s />);\n", componentName(*home))
	} else {
		b.WriteString("\ncreateRoot(document.getElementById(\"root\")).render(<div />);\n")
	}
	return b.String()
}

func reactPage(doc *domain.Project, pg domain.Page) string {
	markup := render.HTML(render.Page(doc, pg.ID, render.Options{Device: render.DeviceWide, Zoom: 100}))
	return fmt.Sprintf(`import React from "react";

export default function %s() {
  return (
    <div dangerouslySetInnerHTML={{ __html: %q }} />
  );
}
`, componentName(pg), markup)
}

func componentName(pg domain.Page) string {
	parts := strings.FieldsFunc(pg.Slug, func(r rune) bool { return r == '-' || r == '_' })
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	if b.Len() == 0 {
		return "Page"
	}
	return b.String()
}

// WordPressTheme writes a ZIP holding a minimal WordPress theme: style.css
// with the theme header, index.php with the rendered home page, and one
// page template per additional page.
func WordPressTheme(doc *domain.Project, outPath string) (string, error) {
	zw, f, err := createZip(outPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	style := fmt.Sprintf(`/*
Theme Name: %s
Description: Exported website theme
Version: 1.0
*/

%s`, doc.Name, render.Stylesheet(doc.Settings))
	files := map[string]string{
		"style.css":     style,
		"functions.php": wpFunctions(),
		"README.md":     scaffoldReadme(doc.Name, "WordPress"),
	}
	for _, pg := range doc.Pages {
		name := "page-" + pg.Slug + ".php"
		if pg.IsHomePage {
			name = "index.php"
		}
		files[name] = wpTemplate(doc, pg)
	}
	for name, content := range files {
		if err := addZipFile(zw, name, []byte(content)); err != nil {
			return "", fmt.Errorf("zip add %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("close zip: %w", err)
	}
	return outPath, nil
}

func wpTemplate(doc *domain.Project, pg domain.Page) string {
	markup := render.HTML(render.Page(doc, pg.ID, render.Options{Device: render.DeviceWide, Zoom: 100}))
	return fmt.Sprintf(`<?php get_header(); ?>
%s
<?php get_footer(); ?>
`, markup)
}

func wpFunctions() string {
	return `<?php
function sitebuilder_enqueue_styles() {
    wp_enqueue_style('sitebuilder-style', get_stylesheet_uri());
}
add_action('wp_enqueue_scripts', 'sitebuilder_enqueue_styles');
`
}

func scaffoldReadme(name, kind string) string {
	return fmt.Sprintf("# %s\n\n%s scaffold exported from the site builder. The markup matches the editor preview; wire it into your own components as needed.\n", name, kind)
}
