package crash

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sitebuilder/internal/storage"
)

func TestWriteReportInTempWithoutProject(t *testing.T) {
	path, err := writeReport(nil, "boom", []byte("stacktrace"))
	if err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(path) })
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "SiteBuilder Crash Report") {
		t.Fatal("report header missing")
	}
	if !strings.Contains(s, "Panic: boom") {
		t.Fatalf("panic missing: %s", s)
	}
	if !strings.Contains(s, "stacktrace") {
		t.Fatal("stack missing")
	}
}

func TestWriteReportLandsInProjectBackups(t *testing.T) {
	root := t.TempDir()
	ph := &storage.ProjectHandle{Root: root, ManifestPath: filepath.Join(root, storage.ManifestFileName)}

	path, err := writeReport(ph, "kaboom", []byte("stack"))
	if err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	if !strings.HasPrefix(path, filepath.Join(root, storage.BackupsDirName)) {
		t.Fatalf("report outside backups dir: %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(b), "ProjectRoot: "+root) {
		t.Fatal("project root missing from report")
	}
}

func TestRecoverWritesReportAndSnapshot(t *testing.T) {
	// quiet the stderr notice
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	defer func() {
		_ = w.Close()
		os.Stderr = oldStderr
		_, _ = io.Copy(io.Discard, r)
	}()

	exitCode := -1
	oldExit := exitFn
	exitFn = func(code int) { exitCode = code }
	defer func() { exitFn = oldExit }()

	root := t.TempDir()
	ph := &storage.ProjectHandle{Root: root, ManifestPath: filepath.Join(root, storage.ManifestFileName)}

	func() {
		defer Recover(ph)
		panic("boom")
	}()

	bdir := filepath.Join(root, storage.BackupsDirName)
	files, _ := os.ReadDir(bdir)
	var report, snapshot bool
	for _, f := range files {
		name := f.Name()
		if strings.HasPrefix(name, "crash-") && strings.HasSuffix(name, ".log") {
			report = true
		}
		if strings.HasPrefix(name, "autosave-") && strings.HasSuffix(name, ".json") {
			snapshot = true
		}
	}
	if !report {
		t.Fatal("no crash report under backups")
	}
	if !snapshot {
		t.Fatal("no autosave snapshot under backups")
	}
	if exitCode != 2 {
		t.Fatalf("exit code = %d", exitCode)
	}
}

func TestRecoverNoPanicIsNoOp(t *testing.T) {
	oldExit := exitFn
	called := false
	exitFn = func(int) { called = true }
	defer func() { exitFn = oldExit }()

	func() {
		defer Recover(nil)
	}()
	if called {
		t.Fatal("Recover exited without a panic")
	}
}
