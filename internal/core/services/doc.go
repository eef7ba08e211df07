// Package services contains the application core: the ingestion
// pipeline and the retrieval service, wired to infrastructure through
// the driven ports.
package services
