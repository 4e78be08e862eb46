// Package core contains the business logic for building podcast feeds.
// It is designed to be framework-agnostic and can be used independently
// of any infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Podcast, Episode and Category entities with validating setters
// - validate: Reusable validation primitives shared by the entities
// - render: The structural node tree and field-emission engine
// - feed: The Generator service that renders a podcast through a writer
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external collaborators (writer, file inspector, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external collaborators are injected via interfaces
// - Business logic is testable in isolation
// - Entities validate eagerly; rendering is a pure read of current state
//
// # Usage Example
//
//	import (
//	    "podcast-feed-api/core/domain"
//	    "podcast-feed-api/core/feed"
//	    "podcast-feed-api/core/interfaces"
//	    xmlwriter "podcast-feed-api/infrastructure/xml/etree"
//	)
//
//	podcast := domain.NewEpisodic()
//	podcast.SetTitle("Test Show")
//	// ... remaining required fields, categories and episodes
//
//	generator := feed.NewGenerator(xmlwriter.NewWriter(), interfaces.Dependencies{
//	    Logger: myLogger, // implements interfaces.Logger
//	})
//
//	document, err := generator.Generate(podcast)
package core
