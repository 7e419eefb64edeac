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
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sitebuilder/internal/domain"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// User is the account record without credentials.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AIContentRecord is a persisted generation result.
type AIContentRecord struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"projectId"`
	ContentType   string    `json:"contentType"`
	Prompt        string    `json:"prompt"`
	GeneratedText string    `json:"generatedText"`
	Tone          string    `json:"tone,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// dbStore wraps the SQL database with the server's persistence operations.
// Project documents are stored whole as JSON in the document column; the
// scalar columns exist for listing and filtering without decoding.
type dbStore struct {
	db *sql.DB
}

func (s *dbStore) CreateUser(ctx context.Context, email, passwordHash, firstName, lastName string) (User, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM users WHERE email = $1`, email).Scan(&exists)
	if err != nil {
		return User{}, fmt.Errorf("check email: %w", err)
	}
	if exists > 0 {
		return User{}, ErrEmailTaken
	}
	u := User{
		ID:        domain.MintID(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
	}
	ts := u.CreatedAt.Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, first_name, last_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, passwordHash, u.FirstName, u.LastName, ts, ts)
	if err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *dbStore) UserByEmail(ctx context.Context, email string) (User, string, error) {
	var u User
	var hash, created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, first_name, last_name, created_at FROM users WHERE email = $1`,
		email).Scan(&u.ID, &u.Email, &hash, &u.FirstName, &u.LastName, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, "", ErrNotFound
	}
	if err != nil {
		return User{}, "", fmt.Errorf("select user: %w", err)
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return u, hash, nil
}

func (s *dbStore) UserByID(ctx context.Context, id string) (User, error) {
	var u User
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, first_name, last_name, created_at FROM users WHERE id = $1`,
		id).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("select user: %w", err)
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return u, nil
}

func (s *dbStore) CreateProject(ctx context.Context, p domain.Project) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (id, user_id, name, template_id, document, is_published, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.UserID, p.Name, p.TemplateID, string(doc), boolInt(p.IsPublished),
		p.CreatedAt.UTC().Format(time.RFC3339), p.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (s *dbStore) ProjectByID(ctx context.Context, id string) (domain.Project, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM projects WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, ErrNotFound
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("select project: %w", err)
	}
	var p domain.Project
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return domain.Project{}, fmt.Errorf("decode document: %w", err)
	}
	return p, nil
}

func (s *dbStore) ProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document FROM projects WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []domain.Project
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var p domain.Project
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *dbStore) UpdateProject(ctx context.Context, p domain.Project) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET name = $1, template_id = $2, document = $3, is_published = $4, updated_at = $5 WHERE id = $6`,
		p.Name, p.TemplateID, string(doc), boolInt(p.IsPublished),
		p.UpdatedAt.UTC().Format(time.RFC3339), p.ID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *dbStore) DeleteProject(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (s *dbStore) SaveAIContent(ctx context.Context, rec AIContentRecord) (AIContentRecord, error) {
	rec.ID = domain.MintID()
	rec.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ai_content (id, project_id, content_type, prompt, generated_text, tone, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.ProjectID, rec.ContentType, rec.Prompt, rec.GeneratedText, rec.Tone,
		rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return AIContentRecord{}, fmt.Errorf("insert ai content: %w", err)
	}
	return rec, nil
}

func (s *dbStore) AIContentByProject(ctx context.Context, projectID string) ([]AIContentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, content_type, prompt, generated_text, tone, created_at
		 FROM ai_content WHERE project_id = $1 ORDER BY created_at DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("select ai content: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []AIContentRecord
	for rows.Next() {
		var rec AIContentRecord
		var created string
		if err := rows.Scan(&rec.ID, &rec.ProjectID, &rec.ContentType, &rec.Prompt, &rec.GeneratedText, &rec.Tone, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
