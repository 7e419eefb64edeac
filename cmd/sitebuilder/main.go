/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sitebuilder/internal/catalog"
	"sitebuilder/internal/crash"
	applog "sitebuilder/internal/log"
	"sitebuilder/internal/render"
	"sitebuilder/internal/storage"
	"sitebuilder/internal/version"

	siteexport "sitebuilder/internal/export"
)

func usage() {
	fmt.Println("SiteBuilder — website builder toolkit")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sitebuilder version|-v|--version              Show version")
	fmt.Println("  sitebuilder init <dir> <name> [template]      Create a project at <dir>, optionally from a template")
	fmt.Println("  sitebuilder templates                         List built-in templates")
	fmt.Println("  sitebuilder open <dir>                        Open project at <dir> and print a summary")
	fmt.Println("  sitebuilder save <dir>                        Re-save project at <dir> (creates a backup)")
	fmt.Println("  sitebuilder render <dir> [slug]               Print a page as standalone HTML (default: home)")
	fmt.Println("  sitebuilder export <dir> <format> [out]       Export as static, react, wordpress, or pdf")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	var ph *storage.ProjectHandle
	defer func() { crash.Recover(ph) }()

	args := os.Args
	if len(args) < 2 {
		usage()
		return
	}
	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println(version.String())
	case "templates":
		for _, t := range catalog.Builtin().All() {
			fmt.Printf("%-16s %-10s %s\n", t.ID, t.Category, t.Name)
		}
	case "init":
		if len(args) < 4 {
			fmt.Println("init requires <dir> and <name>")
			usage()
			os.Exit(2)
		}
		templateID := "blank"
		if len(args) >= 5 {
			templateID = args[4]
		}
		abs, _ := filepath.Abs(args[2])
		l.Info("init project", slog.String("root", abs), slog.String("template", templateID))
		p, err := catalog.Builtin().NewProjectFromTemplate(templateID, args[3], "")
		if err != nil {
			fail(l, "init failed", err)
		}
		h, err := storage.InitProject(abs, p)
		if err != nil {
			fail(l, "init failed", err)
		}
		ph = h
		fmt.Println("Created project at", abs)
	case "open":
		h := mustOpen(l, args)
		ph = h
		fmt.Printf("Opened project: %s\n", h.Project.Name)
		fmt.Printf("Pages: %d\n", len(h.Project.Pages))
		for _, pg := range h.Project.Pages {
			marker := ""
			if pg.IsHomePage {
				marker = " (home)"
			}
			fmt.Printf("  /%s  %d sections%s\n", pg.Slug, len(pg.Sections), marker)
		}
		fmt.Println("Root:", h.Root)
	case "save":
		h := mustOpen(l, args)
		ph = h
		if err := storage.Save(h); err != nil {
			fail(l, "save failed", err)
		}
		fmt.Println("Saved project; previous manifest backed up (if any).")
	case "render":
		h := mustOpen(l, args)
		ph = h
		pageID := ""
		if home := h.Project.HomePage(); home != nil {
			pageID = home.ID
		}
		if len(args) >= 4 {
			pageID = ""
			for _, pg := range h.Project.Pages {
				if pg.Slug == args[3] {
					pageID = pg.ID
					break
				}
			}
			if pageID == "" {
				fail(l, "render failed", fmt.Errorf("no page with slug %q", args[3]))
			}
		}
		fmt.Println(render.Document(&h.Project, pageID, render.Options{Device: render.DeviceWide, Zoom: 100}))
	case "export":
		if len(args) < 4 {
			fmt.Println("export requires <dir> and <format>")
			usage()
			os.Exit(2)
		}
		h := mustOpen(l, args)
		ph = h
		outPath := ""
		if len(args) >= 5 {
			outPath = args[4]
		}
		exportsDir := filepath.Join(h.Root, "exports")
		out, err := siteexport.Export(&h.Project, args[3], exportsDir, outPath)
		if err != nil {
			fail(l, "export failed", err)
		}
		fmt.Println("Exported to", out)
	default:
		usage()
	}
}

func mustOpen(l *slog.Logger, args []string) *storage.ProjectHandle {
	if len(args) < 3 {
		fmt.Printf("%s requires <dir>\n", args[1])
		usage()
		os.Exit(2)
	}
	abs, _ := filepath.Abs(args[2])
	h, err := storage.Open(abs)
	if err != nil {
		fail(l, "open failed", err)
	}
	return h
}

func fail(l *slog.Logger, msg string, err error) {
	l.Error(msg, slog.Any("err", err))
	fmt.Println("Error:", err)
	os.Exit(1)
}
