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
	"strings"

	"sitebuilder/internal/domain"
)

// Per-type builders. Every config field is optional; a missing field drops
// the element it would populate, so a bare config still renders a shell.

func header(cfg *domain.HeaderConfig) *Node {
	nav := el("nav").class("sb-header")
	if cfg.Fixed {
		nav.class("sb-header sb-header-fixed")
	}
	if cfg.Transparent {
		nav.attr("data-transparent", "true")
	}
	if cfg.Title != "" {
		nav.add(text("span", cfg.Title).class("sb-brand"))
	}
	if len(cfg.Navigation) > 0 {
		links := el("ul").class("sb-nav")
		for _, item := range cfg.Navigation {
			links.add(el("li").add(text("a", item).attr("href", "#"+slugify(item))))
		}
		nav.add(links)
	}
	if cfg.SearchBar {
		nav.add(el("input").class("sb-search").attr("type", "search").attr("placeholder", "Search"))
	}
	if cfg.CartIcon {
		nav.add(text("button", "Cart").class("sb-cart"))
	}
	if cfg.CTAButton != "" {
		nav.add(text("button", cfg.CTAButton).class("sb-cta"))
	}
	return nav
}

func hero(cfg *domain.HeroConfig) *Node {
	h := el("div").class("sb-hero")
	if style := backgroundStyle(cfg.BackgroundImage, cfg.BackgroundGradient); style != "" {
		h.attr("style", style)
	}
	if cfg.Layout != "" {
		h.attr("data-layout", cfg.Layout)
	}
	if cfg.Overlay {
		h.add(el("div").class("sb-hero-overlay"))
	}
	inner := el("div").class("sb-hero-inner")
	if cfg.Title != "" {
		inner.add(text("h1", cfg.Title))
	}
	if cfg.Subtitle != "" {
		inner.add(text("p", cfg.Subtitle).class("sb-subtitle"))
	}
	if len(cfg.CTAButtons) > 0 {
		row := el("div").class("sb-cta-row")
		for i, label := range cfg.CTAButtons {
			cls := "sb-cta"
			if i > 0 {
				cls = "sb-cta sb-cta-secondary"
			}
			row.add(text("button", label).class(cls))
		}
		inner.add(row)
	}
	if len(cfg.Features) > 0 {
		feats := el("ul").class("sb-features")
		for _, f := range cfg.Features {
			feats.add(text("li", f))
		}
		inner.add(feats)
	}
	h.add(inner)
	return h
}

func about(cfg *domain.AboutConfig) *Node {
	a := el("div").class("sb-about")
	if cfg.Image != "" {
		a.add(el("img").attr("src", cfg.Image).attr("alt", cfg.Title))
	}
	body := el("div").class("sb-about-body")
	if cfg.Title != "" {
		body.add(text("h2", cfg.Title))
	}
	if cfg.Description != "" {
		body.add(text("p", cfg.Description))
	}
	if len(cfg.Skills) > 0 {
		skills := el("ul").class("sb-skills")
		for _, s := range cfg.Skills {
			skills.add(text("li", s))
		}
		body.add(skills)
	}
	a.add(body)
	return a
}

func services(cfg *domain.ServicesConfig) *Node {
	sv := el("div").class("sb-services")
	if cfg.Layout != "" {
		sv.attr("data-layout", cfg.Layout)
	}
	if cfg.Title != "" {
		sv.add(text("h2", cfg.Title))
	}
	if cfg.Subtitle != "" {
		sv.add(text("p", cfg.Subtitle).class("sb-subtitle"))
	}
	if len(cfg.Services) > 0 {
		grid := el("div").class("sb-grid")
		for _, item := range cfg.Services {
			card := el("div").class("sb-card")
			if item.Icon != "" {
				card.add(el("span").class("sb-icon").attr("data-icon", item.Icon))
			}
			if item.Badge != "" {
				card.add(text("span", item.Badge).class("sb-badge"))
			}
			card.add(text("h3", item.Title))
			if item.Description != "" {
				card.add(text("p", item.Description))
			}
			grid.add(card)
		}
		sv.add(grid)
	}
	return sv
}

func footer(cfg *domain.FooterConfig) *Node {
	f := el("div").class("sb-footer")
	if cfg.Title != "" {
		f.add(text("h2", cfg.Title))
	}
	if cfg.Description != "" {
		f.add(text("p", cfg.Description))
	}
	if len(cfg.SocialLinks) > 0 {
		links := el("ul").class("sb-social")
		for _, l := range cfg.SocialLinks {
			links.add(el("li").add(text("a", l).attr("href", "#"+slugify(l))))
		}
		f.add(links)
	}
	if cfg.Copyright != "" {
		f.add(text("small", cfg.Copyright))
	}
	return f
}

func custom(cfg *domain.CustomConfig) *Node {
	c := el("div").class("sb-custom")
	if cfg.Title != "" {
		c.add(text("h2", cfg.Title))
	}
	if cfg.Body != "" {
		c.add(text("p", cfg.Body))
	}
	return c
}

func products(cfg *domain.ProductsConfig) *Node {
	p := el("div").class("sb-products")
	if cfg.Layout != "" {
		p.attr("data-layout", cfg.Layout)
	}
	if cfg.Title != "" {
		p.add(text("h2", cfg.Title))
	}
	if len(cfg.Products) > 0 {
		grid := el("div").class("sb-grid")
		for _, item := range cfg.Products {
			card := el("div").class("sb-card sb-product")
			if item.Image != "" {
				card.add(el("img").attr("src", item.Image).attr("alt", item.Name))
			}
			if item.Badge != "" {
				card.add(text("span", item.Badge).class("sb-badge"))
			}
			card.add(text("h3", item.Name))
			if item.Price != "" {
				card.add(text("span", item.Price).class("sb-price"))
			}
			grid.add(card)
		}
		p.add(grid)
	}
	return p
}

func testimonials(cfg *domain.TestimonialsConfig) *Node {
	t := el("div").class("sb-testimonials")
	if cfg.Layout != "" {
		t.attr("data-layout", cfg.Layout)
	}
	if cfg.Title != "" {
		t.add(text("h2", cfg.Title))
	}
	for _, item := range cfg.Testimonials {
		quote := el("blockquote").class("sb-quote")
		if item.Text != "" {
			quote.add(text("p", item.Text))
		}
		if item.Rating > 0 {
			quote.add(text("span", strings.Repeat("★", min(item.Rating, 5))).class("sb-rating"))
		}
		attribution := item.Name
		if item.Company != "" {
			attribution = fmt.Sprintf("%s, %s", item.Name, item.Company)
		}
		if attribution != "" {
			quote.add(text("cite", attribution))
		}
		t.add(quote)
	}
	return t
}

func backgroundStyle(image, gradient string) string {
	switch {
	case image != "":
		return fmt.Sprintf("background-image:url(%s);background-size:cover", image)
	case gradient != "":
		return "background-image:" + gradient
	default:
		return ""
	}
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
