package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	resetForTest()
	logPath := filepath.Join(t.TempDir(), LogDirName, LogFileName)
	orig := getLogPath
	getLogPath = func() (string, error) { return logPath, nil }
	t.Cleanup(func() {
		getLogPath = orig
		Close()
		resetForTest()
	})
	return logPath
}

func TestInit_Disabled(t *testing.T) {
	resetForTest()

	if err := Init(false); err != nil {
		t.Fatalf("Init(false) failed: %v", err)
	}
	if Enabled() {
		t.Error("Enabled() should be false")
	}

	Log("noop", "key", 1)
}

func TestInit_WritesStructuredLines(t *testing.T) {
	logPath := useTempLog(t)

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}
	if !Enabled() {
		t.Fatal("Enabled() should be true")
	}

	Log("option committed", "id", "7", "label", "Alice")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(content)
	for _, want := range []string{
		`msg="debug log started"`,
		`msg="option committed" id=7 label=Alice`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("log missing %q:\n%s", want, got)
		}
	}
}

func TestInit_TruncatesExistingLog(t *testing.T) {
	logPath := useTempLog(t)

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(logPath, []byte("stale content\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(content), "stale content") {
		t.Error("log should have been truncated")
	}
}

func TestClose_Repeated(t *testing.T) {
	useTempLog(t)
	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}
	Close()
	Close()
}

func TestGetLogPath(t *testing.T) {
	path, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath() failed: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(LogDirName, LogFileName)) {
		t.Errorf("GetLogPath() = %q, want suffix %q", path, filepath.Join(LogDirName, LogFileName))
	}
}

func resetForTest() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
	logger = nil
}
