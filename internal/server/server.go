/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package server exposes the builder's persistence and AI services over HTTP:
// account auth, the template catalog, project CRUD, AI generation, and
// exports. The document store is a SQL database (Postgres or embedded
// SQLite) holding whole project documents as JSON.
package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"sitebuilder/internal/ai"
	"sitebuilder/internal/catalog"
	"sitebuilder/internal/config"
	applog "sitebuilder/internal/log"
	"sitebuilder/internal/version"
)

// Server carries the handler dependencies.
type Server struct {
	cfg     config.ServerConfig
	db      *sql.DB
	store   *dbStore
	catalog *catalog.Catalog
	gen     ai.Generator // nil when no API key is configured
	secret  string
	revoked *revocations
	log     *slog.Logger
}

// New builds a server around an open, migrated database. gen may be nil; the
// AI endpoints then answer 503.
func New(cfg config.ServerConfig, db *sql.DB, gen ai.Generator) *Server {
	secret := cfg.AuthSecret
	l := applog.WithComponent("server")
	if secret == "" {
		secret = "dev-secret-change-me"
		l.Warn("auth secret not set; using insecure dev secret")
	}
	return &Server{
		cfg:     cfg,
		db:      db,
		store:   &dbStore{db: db},
		catalog: catalog.Builtin(),
		gen:     gen,
		secret:  secret,
		revoked: newRevocations(),
		log:     l,
	}
}

// Start opens the database, applies migrations, and serves until the listener
// fails.
func Start(cfg config.ServerConfig, gen ai.Generator) error {
	db, err := OpenDB(cfg.DBURL)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	s := New(cfg, db, gen)
	s.log.Info("listening", slog.String("addr", cfg.Addr))
	return http.ListenAndServe(cfg.Addr, s.Routes())
}

// Routes returns the HTTP handler with every endpoint registered.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("db not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	mux.HandleFunc("GET /version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(version.String()))
	})

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.withAuth(s.handleLogout))
	mux.HandleFunc("GET /api/auth/user", s.withAuth(s.handleAuthUser))

	mux.HandleFunc("GET /api/templates", s.handleListTemplates)
	mux.HandleFunc("GET /api/templates/category/{category}", s.handleTemplatesByCategory)
	mux.HandleFunc("GET /api/templates/{id}", s.handleTemplateByID)

	mux.HandleFunc("GET /api/projects", s.withAuth(s.handleListProjects))
	mux.HandleFunc("POST /api/projects", s.withAuth(s.handleCreateProject))
	mux.HandleFunc("GET /api/projects/{id}", s.handleGetProject)
	mux.HandleFunc("PUT /api/projects/{id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", s.handleDeleteProject)
	mux.HandleFunc("GET /api/projects/{id}/ai-content", s.withAuth(s.handleProjectAIContent))

	mux.HandleFunc("POST /api/ai/generate-content", s.handleGenerateContent)
	mux.HandleFunc("POST /api/ai/generate-colors", s.handleGenerateColors)

	mux.HandleFunc("POST /api/export", s.handleExport)

	return mux
}

// decodeBody decodes a size-limited JSON request body.
func decodeBody(r *http.Request, dest any) error {
	b, err := io.ReadAll(io.LimitReader(r.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	_ = r.Body.Close()
	if len(b) == 0 {
		return fmt.Errorf("empty request body")
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"message": err.Error()})
}

// ensureDir creates the export directory if missing.
func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
