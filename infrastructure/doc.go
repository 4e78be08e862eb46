// Package infrastructure provides concrete implementations of the
// contracts defined in the core package. These implementations handle
// external concerns such as XML serialization, file metadata lookup,
// and logging.
//
// The infrastructure package is organized by technical concern:
//
// - xml/etree: Generic XML writer backed by beevik/etree
// - fileinfo/standard: File metadata lookup with MIME type sniffing
// - logger/logrus: Structured logger backed by sirupsen/logrus
//
// # XML Writer
//
// The writer turns the core's structural node tree into the final
// document, declaring namespace prefixes at the root and emitting
// attributes in sorted order so repeated renders are byte-identical:
//
//	writer := etree.NewWriter()
//	document, err := writer.WriteDocument(doc)
//
// # File Inspector
//
// The inspector pre-fills episode enclosure metadata from disk:
//
//	inspector := standard.NewInspector()
//	size, mimeType, err := inspector.Inspect("/media/e1.mp3")
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger()
//	logger.Info("Rendered feed", map[string]interface{}{
//	    "title":    "Test Show",
//	    "episodes": 3,
//	})
package infrastructure
