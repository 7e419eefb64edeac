/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package server

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"sitebuilder/internal/ai"
	"sitebuilder/internal/domain"
	"sitebuilder/internal/export"
	"sitebuilder/internal/migrate"
)

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.All())
}

func (s *Server) handleTemplatesByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	writeJSON(w, http.StatusOK, s.catalog.ByCategory(category))
}

func (s *Server) handleTemplateByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	t, ok := s.catalog.ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("template %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request, userID string) {
	projects, err := s.store.ProjectsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

type createProjectRequest struct {
	Name       string `json:"name"`
	TemplateID string `json:"templateId"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request, userID string) {
	var req createProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, errors.New("project name is required"))
		return
	}
	p, err := s.catalog.NewProjectFromTemplate(req.TemplateID, req.Name, userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.CreateProject(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p, err := s.store.ProjectByID(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("project %s not found", id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// updateProjectRequest is a partial update; only present fields are applied.
// A legacy payload carrying sections without pages replaces the home page's
// sections and is normalized on the way in.
type updateProjectRequest struct {
	Name        *string               `json:"name"`
	Pages       *[]domain.Page        `json:"pages"`
	Sections    *[]domain.Section     `json:"sections"`
	Settings    *domain.SettingsPatch `json:"settings"`
	IsPublished *bool                 `json:"isPublished"`
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req updateProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := s.store.ProjectByID(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("project %s not found", id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Pages != nil {
		p.Pages = *req.Pages
	} else if req.Sections != nil {
		if home := p.HomePage(); home != nil {
			home.Sections = *req.Sections
		} else {
			p.Pages = nil
			p.Sections = *req.Sections
		}
	}
	if req.Settings != nil {
		p.Settings.Apply(*req.Settings)
	}
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}
	migrate.Normalize(&p)
	p.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateProject(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.DeleteProject(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

func (s *Server) handleProjectAIContent(w http.ResponseWriter, r *http.Request, _ string) {
	id := r.PathValue("id")
	recs, err := s.store.AIContentByProject(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if recs == nil {
		recs = []AIContentRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

type generateContentRequest struct {
	ai.ContentRequest
	ProjectID string `json:"projectId,omitempty"`
}

func (s *Server) handleGenerateContent(w http.ResponseWriter, r *http.Request) {
	if s.gen == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("AI generation is not configured"))
		return
	}
	var req generateContentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	resp, err := s.gen.GenerateContent(r.Context(), req.ContentRequest)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if req.ProjectID != "" {
		_, err := s.store.SaveAIContent(r.Context(), AIContentRecord{
			ProjectID:     req.ProjectID,
			ContentType:   req.ContentType,
			Prompt:        req.BusinessContext,
			GeneratedText: strings.Join(resp.Suggestions, ", "),
			Tone:          req.Tone,
		})
		if err != nil {
			s.log.Warn("persisting ai content failed", "project", req.ProjectID, "err", err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type generateColorsRequest struct {
	BusinessContext string `json:"businessContext"`
}

func (s *Server) handleGenerateColors(w http.ResponseWriter, r *http.Request) {
	if s.gen == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("AI generation is not configured"))
		return
	}
	var req generateColorsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.BusinessContext) == "" {
		writeError(w, http.StatusBadRequest, errors.New("businessContext is required"))
		return
	}
	scheme, err := s.gen.GenerateColorScheme(r.Context(), req.BusinessContext)
	if err != nil {
		// generation falls back to defaults internally; this is a hard failure
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, scheme)
}

type exportRequest struct {
	ProjectID string `json:"projectId"`
	Format    string `json:"format"`
}

type exportResponse struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"downloadUrl"`
	Format      string `json:"format"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := s.store.ProjectByID(r.Context(), req.ProjectID)
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Errorf("project %s not found", req.ProjectID))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := ensureDir(s.cfg.ExportDir); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out, err := export.Export(&p, req.Format, s.cfg.ExportDir, "")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, exportResponse{
		Success:     true,
		DownloadURL: strings.TrimRight(s.cfg.ExportBase, "/") + "/" + filepath.Base(out),
		Format:      req.Format,
	})
}
