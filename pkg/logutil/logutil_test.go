package logutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetLogger_DiscardsByDefault(t *testing.T) {
	logger := GetLogger("[test] ")
	if logger.Writer() != out {
		t.Errorf("new logger does not share the common output")
	}
}

func TestSetOutput(t *testing.T) {
	logger := GetLogger("[test] ")
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(Discard.Writer())

	logger.Println("hello")
	if !strings.Contains(buf.String(), "[test] ") || !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output %q does not contain prefix and message", buf.String())
	}
}

func TestSetOutputFile(t *testing.T) {
	logger := GetLogger("[file] ")
	fname := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(fname); err != nil {
		t.Fatalf("SetOutputFile: %v", err)
	}
	logger.Println("to file")
	// Closes the file.
	if err := SetOutputFile(""); err != nil {
		t.Fatalf("SetOutputFile(\"\"): %v", err)
	}

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "[file] ") {
		t.Errorf("log file content %q does not contain prefix", content)
	}
}

func TestSetOutputFile_BadPath(t *testing.T) {
	err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir", "log"))
	if err == nil {
		t.Errorf("SetOutputFile with bad path returned nil error")
	}
}
