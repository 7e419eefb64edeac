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
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"sitebuilder/internal/domain"
)

// PageProofPDF writes a review proof: one PDF page per site page, showing the
// section outline with titles, the palette, and the typography settings.
// Built-in Helvetica keeps text vector without font embedding.
func PageProofPDF(doc *domain.Project, outPath string) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s — Page Proof", doc.Name), true)
	pdf.SetAuthor("Site Builder", false)

	for _, pg := range doc.Pages {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 18)
		title := pg.Name
		if pg.IsHomePage {
			title += " (home)"
		}
		pdf.CellFormat(0, 10, pdfSafe(fmt.Sprintf("%s / %s", doc.Name, title)), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 6, "/"+pg.Slug, "", 1, "L", false, 0, "")
		pdf.Ln(4)
		pdf.SetTextColor(0, 0, 0)

		drawPalette(pdf, doc.Settings)
		pdf.Ln(6)

		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Sections", "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, s := range pg.SortedSections() {
			line := fmt.Sprintf("%d. %s", s.Order, s.Type)
			if t := sectionTitle(s); t != "" {
				line += " — " + t
			}
			pdf.CellFormat(0, 7, pdfSafe(line), "", 1, "L", false, 0, "")
		}
		if len(pg.Sections) == 0 {
			pdf.SetTextColor(150, 150, 150)
			pdf.CellFormat(0, 7, "(empty page)", "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return outPath, nil
}

func drawPalette(pdf *gofpdf.Fpdf, s domain.Settings) {
	colors := []struct {
		label string
		hex   string
	}{
		{"primary", s.Colors.Primary},
		{"secondary", s.Colors.Secondary},
		{"accent", s.Colors.Accent},
	}
	x := pdf.GetX()
	y := pdf.GetY()
	for i, c := range colors {
		r, g, b := hexToRGB(c.hex)
		pdf.SetFillColor(r, g, b)
		cx := x + float64(i)*34
		pdf.Rect(cx, y, 10, 10, "F")
		pdf.SetFont("Helvetica", "", 8)
		pdf.Text(cx+12, y+4, c.label)
		pdf.Text(cx+12, y+8, c.hex)
	}
	pdf.SetY(y + 12)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Font %s, heading %dpx, body %dpx", s.Typography.FontFamily, s.Typography.HeadingSize, s.Typography.BodySize), "", 1, "L", false, 0, "")
}

// hexToRGB parses #RRGGBB; bad input yields black.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	r, err1 := strconv.ParseInt(hex[1:3], 16, 0)
	g, err2 := strconv.ParseInt(hex[3:5], 16, 0)
	b, err3 := strconv.ParseInt(hex[5:7], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return int(r), int(g), int(b)
}

// sectionTitle pulls the headline out of whatever config variant the section
// carries, for the outline listing.
func sectionTitle(s domain.Section) string {
	switch cfg := s.Config.(type) {
	case *domain.HeaderConfig:
		return cfg.Title
	case *domain.HeroConfig:
		return cfg.Title
	case *domain.AboutConfig:
		return cfg.Title
	case *domain.ServicesConfig:
		return cfg.Title
	case *domain.FooterConfig:
		return cfg.Title
	case *domain.CustomConfig:
		return cfg.Title
	case *domain.ProductsConfig:
		return cfg.Title
	case *domain.TestimonialsConfig:
		return cfg.Title
	default:
		return ""
	}
}

// pdfSafe replaces characters outside cp1252 so built-in fonts render them.
func pdfSafe(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			switch r {
			case '—':
				out = append(out, '-')
			default:
				out = append(out, '?')
			}
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
