// Package sqlite provides persistent storage for documents, chunks and
// catalog items backed by a single SQLite database file.
//
// Embeddings are stored as little-endian float32 blobs. Chunk and
// catalog rows cascade on document deletion; the document+chunks insert
// is one transaction so a partially indexed document is never visible.
package sqlite
