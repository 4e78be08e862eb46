// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for collaborators required by the feed core

package interfaces

// Dependencies holds all external collaborators required by the core
// feed-building logic.
type Dependencies struct {
	// Logger provides structured logging
	Logger Logger

	// FileInspector provides local file metadata lookup
	FileInspector FileInspector
}
