/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render derives a visual tree from a project document. Rendering is
// a pure function of (document, page, device, zoom): sections are laid out
// sorted by order, dispatched on their type tag, and missing optional config
// fields drop the dependent element instead of failing. Unknown section
// types render as a visible inert stub that stays selectable by id.
package render

import (
	"fmt"
	"sort"
	"strings"

	"sitebuilder/internal/domain"
)

// Device selects one of three fixed preview viewport widths.
type Device string

const (
	DeviceNarrow Device = "narrow"
	DeviceMedium Device = "medium"
	DeviceWide   Device = "wide"
)

// Width returns the viewport width in CSS pixels for the device.
func (d Device) Width() int {
	switch d {
	case DeviceNarrow:
		return 375
	case DeviceMedium:
		return 768
	default:
		return 1280
	}
}

// Options is the viewing context for a render pass. Zoom is a percentage;
// it scales presentation only and never affects layout decisions.
type Options struct {
	Device Device
	Zoom   int
}

// Node is one element of the rendered visual tree.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

func el(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

func text(tag, s string) *Node {
	return &Node{Tag: tag, Text: s}
}

func (n *Node) attr(key, val string) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[key] = val
	return n
}

func (n *Node) class(c string) *Node { return n.attr("class", c) }

func (n *Node) add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first node for which pred is true, depth-first.
func (n *Node) Find(pred func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if pred(n) {
		return n
	}
	for _, c := range n.Children {
		if hit := c.Find(pred); hit != nil {
			return hit
		}
	}
	return nil
}

// Page renders one page of the document into a visual tree. An empty pageID
// targets the home page; an unknown pageID yields an empty canvas rather
// than an error.
func Page(doc *domain.Project, pageID string, opt Options) *Node {
	zoom := clampZoom(opt.Zoom)
	root := el("div").class("sb-canvas").
		attr("data-device", string(deviceOrDefault(opt.Device))).
		attr("style", fmt.Sprintf("width:%dpx;transform:scale(%s);transform-origin:top center", opt.Device.Width(), zoomFactor(zoom)))

	if doc == nil {
		return root
	}
	var pg *domain.Page
	if pageID == "" {
		pg = doc.HomePage()
	} else {
		pg = doc.PageByID(pageID)
	}
	if pg == nil {
		return root
	}
	root.attr("data-page", pg.ID)
	for _, s := range pg.SortedSections() {
		root.add(section(s))
	}
	return root
}

// section wraps a single section in its container and dispatches on type.
func section(s domain.Section) *Node {
	wrap := el("section").
		attr("data-section-id", s.ID).
		attr("data-section-type", string(s.Type))
	switch cfg := s.Config.(type) {
	case *domain.HeaderConfig:
		wrap.add(header(cfg))
	case *domain.HeroConfig:
		wrap.add(hero(cfg))
	case *domain.AboutConfig:
		wrap.add(about(cfg))
	case *domain.ServicesConfig:
		wrap.add(services(cfg))
	case *domain.FooterConfig:
		wrap.add(footer(cfg))
	case *domain.CustomConfig:
		wrap.add(custom(cfg))
	case *domain.ProductsConfig:
		wrap.add(products(cfg))
	case *domain.TestimonialsConfig:
		wrap.add(testimonials(cfg))
	default:
		wrap.class("sb-section-stub")
		wrap.add(text("div", fmt.Sprintf("Unsupported section type %q", s.Type)).class("sb-stub-marker"))
	}
	return wrap
}

func deviceOrDefault(d Device) Device {
	switch d {
	case DeviceNarrow, DeviceMedium, DeviceWide:
		return d
	default:
		return DeviceWide
	}
}

func clampZoom(z int) int {
	if z <= 0 {
		return 100
	}
	if z < 50 {
		return 50
	}
	if z > 200 {
		return 200
	}
	return z
}

func zoomFactor(z int) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", float64(z)/100), "0"), ".")
}

// SortedByOrder returns sections sorted ascending by order, stable on ties.
// Exposed for callers that lay out sections without building a full tree.
func SortedByOrder(sections []domain.Section) []domain.Section {
	out := make([]domain.Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
