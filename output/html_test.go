package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHTMLRender(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.html")
	h := NewHTML(path, "Courier New")
	if err := h.Render([][]rune{{'<', '&'}, {'a', ' '}}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	doc := string(data)

	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("Expected document to start with a doctype")
	}
	if !strings.Contains(doc, "Courier New") {
		t.Error("Expected font family in the document")
	}
	if !strings.Contains(doc, "&lt;&amp;\n") {
		t.Errorf("Expected escaped first row, got:\n%s", doc)
	}
	if !strings.Contains(doc, "a \n") {
		t.Errorf("Expected literal second row, got:\n%s", doc)
	}
}

func TestHTMLRenderOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.html")
	h := NewHTML(path, "Courier New")
	if err := h.Render([][]rune{{'x'}}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if err := h.Render([][]rune{{'y'}}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if strings.Contains(string(data), "x\n") {
		t.Error("Expected second render to replace the first")
	}
	if !strings.Contains(string(data), "y\n") {
		t.Error("Expected second render's art in the document")
	}
}

func TestHTMLRenderBadPath(t *testing.T) {
	t.Parallel()

	h := NewHTML(filepath.Join(t.TempDir(), "no", "such", "dir", "out.html"), "Courier New")
	if err := h.Render([][]rune{{'x'}}); err == nil {
		t.Error("Expected error for unwritable path")
	}
}
