// ABOUTME: FileInspector abstracts local file metadata lookup
// ABOUTME: Used to pre-fill episode file size and MIME type from disk

package interfaces

// FileInspector reports metadata about a local media file.
type FileInspector interface {
	// Inspect returns the byte size and a best-guess MIME type for the
	// file at path. Any failure (missing file, unreadable) is returned
	// as an error rather than a zero result.
	Inspect(path string) (size int64, mimeType string, err error)
}
