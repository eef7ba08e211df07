// Package domain contains the core business entities and rules for docbase.
// It has no dependencies on other internal packages.
package domain
