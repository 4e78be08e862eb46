package standard

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestInspector_Inspect_SniffsContent(t *testing.T) {
	// Minimal ID3v2 header marks the file as MP3 regardless of name.
	content := append([]byte("ID3\x03\x00\x00\x00\x00\x00\x00"), make([]byte, 64)...)
	path := writeTempFile(t, "episode.mp3", content)

	size, mime, err := NewInspector().Inspect(path)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if size != int64(len(content)) {
		t.Errorf("size = %d, want %d", size, len(content))
	}
	if mime != "audio/mpeg" {
		t.Errorf("mime = %q, want audio/mpeg", mime)
	}
}

func TestInspector_Inspect_FallsBackToExtension(t *testing.T) {
	// Opaque bytes sniff as octet-stream; the extension table decides.
	path := writeTempFile(t, "episode.m4a", make([]byte, 32))

	_, mime, err := NewInspector().Inspect(path)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if mime != "audio/x-m4a" {
		t.Errorf("mime = %q, want audio/x-m4a", mime)
	}
}

func TestInspector_Inspect_MissingFile(t *testing.T) {
	_, _, err := NewInspector().Inspect(filepath.Join(t.TempDir(), "missing.mp3"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestInspector_Inspect_Directory(t *testing.T) {
	_, _, err := NewInspector().Inspect(t.TempDir())
	if err == nil {
		t.Error("expected error for directory")
	}
}
