/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package store

import (
	"encoding/json"
	"time"

	"sitebuilder/internal/domain"
)

// history keeps an undo/redo stack of document snapshots with memory and
// depth caps. Snapshots captured in quick succession coalesce so a drag of
// slider events counts as one undo step. Not goroutine-safe on its own; the
// store's mutex guards it.

type historyConfig struct {
	// MaxBytes is a soft cap; oldest undo entries are pruned when exceeded.
	MaxBytes int
	// MaxDepth limits the number of undo snapshots kept (0 means unlimited).
	MaxDepth int
	// MinInterval coalesces snapshots captured within the interval,
	// replacing the previous one instead of pushing a new entry.
	MinInterval time.Duration
}

type snapshot struct {
	blob []byte
	ts   time.Time
}

type history struct {
	cfg        historyConfig
	undo       []snapshot
	redo       []snapshot
	totalBytes int
}

func newHistory(cfg historyConfig) *history {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 16 * 1024 * 1024 // 16 MiB
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 100
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 250 * time.Millisecond
	}
	return &history{cfg: cfg}
}

// push records the document state before a mutation. Any new change
// invalidates the redo stack.
func (h *history) push(p *domain.Project) {
	blob, err := json.Marshal(p)
	if err != nil {
		return
	}
	s := snapshot{blob: blob, ts: time.Now()}
	// Bursts coalesce: the oldest pre-state of the burst wins, so one undo
	// steps back over the whole burst.
	if n := len(h.undo); n > 0 && s.ts.Sub(h.undo[n-1].ts) < h.cfg.MinInterval {
		h.undo[n-1].ts = s.ts
		h.redo = nil
		return
	}
	h.undo = append(h.undo, s)
	h.totalBytes += len(s.blob)
	h.redo = nil
	h.enforceCaps()
}

// undoTo pops the last snapshot, stashing the current state for redo.
func (h *history) undoTo(current *domain.Project) (*domain.Project, bool) {
	n := len(h.undo)
	if n == 0 {
		return nil, false
	}
	s := h.undo[n-1]
	restored, err := decode(s.blob)
	if err != nil {
		// corrupt entry; drop it
		h.undo = h.undo[:n-1]
		h.totalBytes -= len(s.blob)
		return nil, false
	}
	cur, err := json.Marshal(current)
	if err != nil {
		return nil, false
	}
	h.undo = h.undo[:n-1]
	h.totalBytes -= len(s.blob)
	h.redo = append(h.redo, snapshot{blob: cur, ts: time.Now()})
	return restored, true
}

// redoTo pops the last redo snapshot, stashing the current state for undo.
func (h *history) redoTo(current *domain.Project) (*domain.Project, bool) {
	n := len(h.redo)
	if n == 0 {
		return nil, false
	}
	s := h.redo[n-1]
	restored, err := decode(s.blob)
	if err != nil {
		h.redo = h.redo[:n-1]
		return nil, false
	}
	cur, err := json.Marshal(current)
	if err != nil {
		return nil, false
	}
	h.redo = h.redo[:n-1]
	h.undo = append(h.undo, snapshot{blob: cur, ts: time.Now()})
	h.totalBytes += len(cur)
	h.enforceCaps()
	return restored, true
}

func (h *history) clear() {
	h.undo = nil
	h.redo = nil
	h.totalBytes = 0
}

func (h *history) enforceCaps() {
	if h.cfg.MaxDepth > 0 && len(h.undo) > h.cfg.MaxDepth {
		drop := len(h.undo) - h.cfg.MaxDepth
		for i := 0; i < drop; i++ {
			h.totalBytes -= len(h.undo[i].blob)
		}
		h.undo = append([]snapshot{}, h.undo[drop:]...)
	}
	for h.cfg.MaxBytes > 0 && h.totalBytes > h.cfg.MaxBytes && len(h.undo) > 1 {
		h.totalBytes -= len(h.undo[0].blob)
		h.undo = h.undo[1:]
	}
}

func decode(blob []byte) (*domain.Project, error) {
	var p domain.Project
	if err := json.Unmarshal(blob, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
