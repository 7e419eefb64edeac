/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ai

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	applog "sitebuilder/internal/log"
)

// Generator produces website copy and color schemes.
type Generator interface {
	GenerateContent(ctx context.Context, req ContentRequest) (ContentResponse, error)
	GenerateColorScheme(ctx context.Context, businessContext string) (ColorScheme, error)
}

// Client is a Generator backed by the Gemini API.
type Client struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

// NewClient creates a Gemini-backed generator.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: c, model: model, log: applog.WithComponent("ai")}, nil
}

// GenerateContent asks the model for suggestion variations of the requested
// content type.
func (c *Client) GenerateContent(ctx context.Context, req ContentRequest) (ContentResponse, error) {
	if err := req.Validate(); err != nil {
		return ContentResponse{}, err
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(req.ContentType, req.Tone), genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt(req)), cfg)
	if err != nil {
		c.log.Error("content generation failed", slog.String("type", req.ContentType), slog.Any("err", err))
		return ContentResponse{}, fmt.Errorf("generate content: %w", err)
	}
	suggestions, err := parseSuggestions(resp.Text())
	if err != nil {
		return ContentResponse{}, err
	}
	return ContentResponse{Suggestions: suggestions, ContentType: req.ContentType}, nil
}

// GenerateColorScheme asks the model for a palette matching the business
// context. Any failure yields the builder default palette, never an error.
func (c *Client) GenerateColorScheme(ctx context.Context, businessContext string) (ColorScheme, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(colorSystemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	prompt := genai.Text("Suggest colors for: " + businessContext)
	resp, err := c.client.Models.GenerateContent(ctx, c.model, prompt, cfg)
	if err != nil {
		c.log.Warn("color generation failed, using defaults", slog.Any("err", err))
		return DefaultColorScheme(), nil
	}
	return parseColorScheme(resp.Text()), nil
}
