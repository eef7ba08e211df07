// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): extractors, embedding, vision, storage.
package driven
