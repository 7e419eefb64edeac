/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package store holds the currently open project document plus the builder's
// selection state, and notifies subscribers synchronously after every
// mutation. It is the single owner of the document: views read through
// getters, mutate through the operations here, and re-derive on notify.
//
// All document operations are permissive: a missing section or page id is a
// no-op, not an error. The store backs an interactive editor where stale ids
// are expected (double-click races, late async callbacks).
package store

import (
	"log/slog"
	"strconv"
	"sync"

	"sitebuilder/internal/domain"
	applog "sitebuilder/internal/log"
	"sitebuilder/internal/migrate"
	"sitebuilder/internal/render"
)

// Zoom bounds, in percent.
const (
	ZoomMin = 50
	ZoomMax = 200
)

// Listener is invoked synchronously after each store mutation.
type Listener func()

// Store is the mutable state container for the builder session.
// It is safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int

	project       *domain.Project
	currentPageID string

	selectedSectionID string
	device            render.Device
	zoom              int
	leftTab           string
	rightTab          string

	aiModalOpen       bool
	exportModalOpen   bool
	generatingContent bool
	exporting         bool

	hist *history
	log  *slog.Logger
}

// New returns a store with default selection state and no open project.
func New() *Store {
	return &Store{
		listeners: make(map[int]Listener),
		device:    render.DeviceWide,
		zoom:      100,
		leftTab:   "templates",
		rightTab:  "design",
		hist:      newHistory(historyConfig{}),
		log:       applog.WithComponent("store"),
	}
}

// Subscribe registers a listener and returns its unsubscribe func.
func (st *Store) Subscribe(fn Listener) func() {
	st.mu.Lock()
	id := st.nextID
	st.nextID++
	st.listeners[id] = fn
	st.mu.Unlock()
	return func() {
		st.mu.Lock()
		delete(st.listeners, id)
		st.mu.Unlock()
	}
}

// notify calls every listener outside the lock, synchronously.
func (st *Store) notify() {
	st.mu.Lock()
	fns := make([]Listener, 0, len(st.listeners))
	for _, fn := range st.listeners {
		fns = append(fns, fn)
	}
	st.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// SetCurrentProject replaces the whole document. Legacy flat-section
// documents are normalized transparently. Selection state resets to the home
// page; undo history is cleared because it belongs to the previous document.
func (st *Store) SetCurrentProject(doc domain.Project) {
	migrate.Normalize(&doc)
	st.mu.Lock()
	st.project = &doc
	st.currentPageID = ""
	if hp := doc.HomePage(); hp != nil {
		st.currentPageID = hp.ID
	}
	st.selectedSectionID = ""
	st.hist.clear()
	st.mu.Unlock()
	st.log.Info("project opened", slog.String("project", doc.ID), slog.Int("pages", len(doc.Pages)))
	st.notify()
}

// Project returns a deep copy of the current document, or false if none open.
func (st *Store) Project() (domain.Project, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.project == nil {
		return domain.Project{}, false
	}
	return st.project.Clone(), true
}

// activePageLocked resolves the page the canvas currently targets.
func (st *Store) activePageLocked() *domain.Page {
	if st.project == nil {
		return nil
	}
	if pg := st.project.PageByID(st.currentPageID); pg != nil {
		return pg
	}
	return st.project.HomePage()
}

// AddSection appends a section to the currently active page. A missing or
// colliding order gets max(existing)+1; a missing id gets a fresh one.
func (st *Store) AddSection(s domain.Section) {
	st.mu.Lock()
	pg := st.activePageLocked()
	if pg == nil {
		st.mu.Unlock()
		return
	}
	st.snapshotLocked()
	if s.ID == "" {
		s.ID = domain.MintID()
	}
	if s.Order == 0 || orderTaken(pg, s.Order) {
		s.Order = maxOrder(pg) + 1
	}
	pg.Sections = append(pg.Sections, s)
	st.mu.Unlock()
	st.notify()
}

// RemoveSection removes a section by id from whichever page contains it.
// Missing ids are a no-op.
func (st *Store) RemoveSection(id string) {
	st.mu.Lock()
	if st.project == nil {
		st.mu.Unlock()
		return
	}
	pg, idx := st.project.FindSection(id)
	if pg == nil {
		st.mu.Unlock()
		return
	}
	st.snapshotLocked()
	pg.Sections = append(pg.Sections[:idx], pg.Sections[idx+1:]...)
	if st.selectedSectionID == id {
		st.selectedSectionID = ""
	}
	st.mu.Unlock()
	st.notify()
}

// DuplicateSection deep-copies the source section, mints a fresh id, and
// inserts the copy immediately after the source. Orders on the page are then
// re-integerized to 1..n so the sequence stays stable without fractional
// orders. The copy becomes the selected section.
func (st *Store) DuplicateSection(id string) {
	st.mu.Lock()
	if st.project == nil {
		st.mu.Unlock()
		return
	}
	pg, idx := st.project.FindSection(id)
	if pg == nil {
		st.mu.Unlock()
		return
	}
	st.snapshotLocked()
	cp := pg.Sections[idx].Clone()
	cp.ID = domain.MintID()
	pg.Sections = append(pg.Sections, domain.Section{})
	copy(pg.Sections[idx+2:], pg.Sections[idx+1:])
	pg.Sections[idx+1] = cp
	renormalizeOrders(pg)
	st.selectedSectionID = cp.ID
	st.mu.Unlock()
	st.notify()
}

// AddPage appends a page. The first page of a document is always the home
// page regardless of input; later pages never steal the home flag. Empty ids
// are minted, colliding slugs get a numeric suffix.
func (st *Store) AddPage(p domain.Page) {
	st.mu.Lock()
	if st.project == nil {
		st.mu.Unlock()
		return
	}
	st.snapshotLocked()
	if p.ID == "" {
		p.ID = domain.MintID()
	}
	p.Slug = uniqueSlug(st.project, p.Slug)
	if len(st.project.Pages) == 0 {
		p.IsHomePage = true
	} else if p.IsHomePage && st.project.HomePage() != nil {
		p.IsHomePage = false
	}
	st.project.Pages = append(st.project.Pages, p)
	st.mu.Unlock()
	st.notify()
}

// SetCurrentPage changes which page the canvas targets. Unknown ids no-op.
func (st *Store) SetCurrentPage(id string) {
	st.mu.Lock()
	if st.project == nil || st.project.PageByID(id) == nil {
		st.mu.Unlock()
		return
	}
	st.currentPageID = id
	st.selectedSectionID = ""
	st.mu.Unlock()
	st.notify()
}

// CurrentPageID returns the id of the page the canvas targets.
func (st *Store) CurrentPageID() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.currentPageID
}

// UpdateProjectSettings merges the patch into the document settings, one
// top-level group at a time.
func (st *Store) UpdateProjectSettings(p domain.SettingsPatch) {
	st.mu.Lock()
	if st.project == nil {
		st.mu.Unlock()
		return
	}
	st.snapshotLocked()
	st.project.Settings.Apply(p)
	st.mu.Unlock()
	st.notify()
}

// SetSelectedDevice selects the preview viewport.
func (st *Store) SetSelectedDevice(d render.Device) {
	st.mu.Lock()
	st.device = d
	st.mu.Unlock()
	st.notify()
}

// SelectedDevice returns the preview viewport.
func (st *Store) SelectedDevice() render.Device {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.device
}

// SetZoom sets the preview zoom percentage, clamped to [ZoomMin, ZoomMax].
func (st *Store) SetZoom(n int) {
	if n < ZoomMin {
		n = ZoomMin
	}
	if n > ZoomMax {
		n = ZoomMax
	}
	st.mu.Lock()
	st.zoom = n
	st.mu.Unlock()
	st.notify()
}

// Zoom returns the preview zoom percentage.
func (st *Store) Zoom() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.zoom
}

// SetSelectedSection marks a section as selected. Stale ids are accepted; the
// selection simply points at nothing until the next change.
func (st *Store) SetSelectedSection(id string) {
	st.mu.Lock()
	st.selectedSectionID = id
	st.mu.Unlock()
	st.notify()
}

// SelectedSection returns the selected section id, possibly empty.
func (st *Store) SelectedSection() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.selectedSectionID
}

// SetLeftSidebarTab switches the left panel tab.
func (st *Store) SetLeftSidebarTab(tab string) {
	st.mu.Lock()
	st.leftTab = tab
	st.mu.Unlock()
	st.notify()
}

// SetRightSidebarTab switches the right panel tab.
func (st *Store) SetRightSidebarTab(tab string) {
	st.mu.Lock()
	st.rightTab = tab
	st.mu.Unlock()
	st.notify()
}

// SidebarTabs returns the left and right panel tabs.
func (st *Store) SidebarTabs() (left, right string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.leftTab, st.rightTab
}

// OpenAIModal opens the AI assistant modal.
func (st *Store) OpenAIModal() { st.setFlag(&st.aiModalOpen, true) }

// CloseAIModal closes the AI assistant modal.
func (st *Store) CloseAIModal() { st.setFlag(&st.aiModalOpen, false) }

// OpenExportModal opens the export modal.
func (st *Store) OpenExportModal() { st.setFlag(&st.exportModalOpen, true) }

// CloseExportModal closes the export modal.
func (st *Store) CloseExportModal() { st.setFlag(&st.exportModalOpen, false) }

// SetGeneratingContent flags an in-flight AI request; the UI disables
// conflicting controls while set.
func (st *Store) SetGeneratingContent(v bool) { st.setFlag(&st.generatingContent, v) }

// SetExporting flags an in-flight export.
func (st *Store) SetExporting(v bool) { st.setFlag(&st.exporting, v) }

// Flags returns the transient UI flags.
func (st *Store) Flags() (aiModal, exportModal, generating, exporting bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.aiModalOpen, st.exportModalOpen, st.generatingContent, st.exporting
}

func (st *Store) setFlag(f *bool, v bool) {
	st.mu.Lock()
	*f = v
	st.mu.Unlock()
	st.notify()
}

// Undo restores the document state before the last document mutation.
func (st *Store) Undo() bool {
	st.mu.Lock()
	if st.project == nil {
		st.mu.Unlock()
		return false
	}
	prev, ok := st.hist.undoTo(st.project)
	if ok {
		st.project = prev
	}
	st.mu.Unlock()
	if ok {
		st.notify()
	}
	return ok
}

// Redo re-applies the last undone document mutation.
func (st *Store) Redo() bool {
	st.mu.Lock()
	if st.project == nil {
		st.mu.Unlock()
		return false
	}
	next, ok := st.hist.redoTo(st.project)
	if ok {
		st.project = next
	}
	st.mu.Unlock()
	if ok {
		st.notify()
	}
	return ok
}

// snapshotLocked records the current document for undo. Caller holds the lock
// and is about to mutate the document.
func (st *Store) snapshotLocked() {
	if st.project == nil {
		return
	}
	st.hist.push(st.project)
}

func maxOrder(pg *domain.Page) int {
	m := 0
	for _, s := range pg.Sections {
		if s.Order > m {
			m = s.Order
		}
	}
	return m
}

func orderTaken(pg *domain.Page, order int) bool {
	for _, s := range pg.Sections {
		if s.Order == order {
			return true
		}
	}
	return false
}

// renormalizeOrders sorts the page's sections stably by order and assigns
// consecutive integers 1..n, removing duplicates and gaps after inserts.
func renormalizeOrders(pg *domain.Page) {
	sorted := pg.SortedSections()
	for i := range sorted {
		sorted[i].Order = i + 1
	}
	pg.Sections = sorted
}

// uniqueSlug suffixes the slug until it is unique within the project.
func uniqueSlug(p *domain.Project, slug string) string {
	if slug == "" {
		slug = "page"
	}
	taken := func(s string) bool {
		for _, pg := range p.Pages {
			if pg.Slug == s {
				return true
			}
		}
		return false
	}
	if !taken(slug) {
		return slug
	}
	for i := 2; ; i++ {
		candidate := slug + "-" + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate
		}
	}
}
