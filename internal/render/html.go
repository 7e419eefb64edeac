/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"sitebuilder/internal/domain"
)

var voidTags = map[string]bool{
	"img": true, "input": true, "br": true, "hr": true,
	"meta": true, "link": true,
}

// WriteHTML serializes the node tree as HTML. Attribute order is
// deterministic (sorted by key) so output is stable across runs.
func WriteHTML(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if _, err := fmt.Fprintf(w, "<%s", n.Tag); err != nil {
		return err
	}
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, k, html.EscapeString(n.Attrs[k])); err != nil {
			return err
		}
	}
	if voidTags[n.Tag] {
		_, err := io.WriteString(w, "/>")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if n.Text != "" {
		if _, err := io.WriteString(w, html.EscapeString(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := WriteHTML(w, c); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>", n.Tag)
	return err
}

// HTML renders the node tree to a string.
func HTML(n *Node) string {
	var b strings.Builder
	_ = WriteHTML(&b, n)
	return b.String()
}

// containerWidths maps the settings token to a max-width in pixels.
// "full" has no cap.
var containerWidths = map[string]int{
	"4xl": 896,
	"5xl": 1024,
	"6xl": 1152,
	"7xl": 1280,
}

var fontStacks = map[string]string{
	"inter":     "'Inter',sans-serif",
	"roboto":    "'Roboto',sans-serif",
	"poppins":   "'Poppins',sans-serif",
	"playfair":  "'Playfair Display',serif",
	"open-sans": "'Open Sans',sans-serif",
}

var animationDurations = map[string]string{
	"slow":   "0.6s",
	"normal": "0.3s",
	"fast":   "0.15s",
}

// Stylesheet emits the CSS derived from project settings. Unknown tokens
// fall back to the defaults so a hand-edited document still styles.
func Stylesheet(s domain.Settings) string {
	font, ok := fontStacks[s.Typography.FontFamily]
	if !ok {
		font = fontStacks["inter"]
	}
	dur, ok := animationDurations[s.Animations.Speed]
	if !ok {
		dur = animationDurations["normal"]
	}
	maxWidth := "1152px"
	if s.Layout.ContainerWidth == "full" {
		maxWidth = "100%"
	} else if w, ok := containerWidths[s.Layout.ContainerWidth]; ok {
		maxWidth = fmt.Sprintf("%dpx", w)
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":root{--color-primary:%s;--color-secondary:%s;--color-accent:%s;", s.Colors.Primary, s.Colors.Secondary, s.Colors.Accent)
	fmt.Fprintf(&b, "--font-family:%s;--heading-size:%dpx;--body-size:%dpx;", font, s.Typography.HeadingSize, s.Typography.BodySize)
	fmt.Fprintf(&b, "--section-spacing:%dpx;--container-width:%s;--anim-duration:%s}\n", s.Layout.Spacing, maxWidth, dur)
	b.WriteString("body{font-family:var(--font-family);font-size:var(--body-size);margin:0}\n")
	b.WriteString("h1{font-size:var(--heading-size)}\n")
	b.WriteString("section{padding:var(--section-spacing) 0}\n")
	b.WriteString("section>*{max-width:var(--container-width);margin:0 auto}\n")
	b.WriteString(".sb-cta{background:var(--color-primary);color:#fff;border:0;padding:0.6em 1.2em;border-radius:6px}\n")
	b.WriteString(".sb-cta-secondary{background:var(--color-secondary)}\n")
	b.WriteString(".sb-badge{background:var(--color-accent);color:#fff;padding:0.1em 0.5em;border-radius:4px}\n")
	b.WriteString(".sb-section-stub{border:2px dashed #999;color:#666;padding:1em;text-align:center}\n")
	if s.Animations.ScrollAnimations {
		b.WriteString("section{animation:sb-fade var(--anim-duration) ease-in}\n")
		b.WriteString("@keyframes sb-fade{from{opacity:0;transform:translateY(8px)}to{opacity:1;transform:none}}\n")
	}
	if s.Animations.HoverEffects {
		b.WriteString(".sb-card{transition:transform var(--anim-duration)}\n")
		b.WriteString(".sb-card:hover{transform:translateY(-4px)}\n")
	}
	return b.String()
}

// Document renders a complete standalone HTML page for a single project page,
// stylesheet inlined. It is what the static export writes to disk.
func Document(doc *domain.Project, pageID string, opt Options) string {
	title := "Site"
	if doc != nil && doc.Name != "" {
		title = doc.Name
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\"/>\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>\n")
	if doc != nil {
		b.WriteString(Stylesheet(doc.Settings))
	}
	b.WriteString("</style>\n</head>\n<body>\n")
	_ = WriteHTML(&b, Page(doc, pageID, opt))
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
