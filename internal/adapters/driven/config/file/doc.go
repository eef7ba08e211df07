// Package file implements configuration persistence on a TOML file
// under the docbase config directory, with environment overrides for
// credentials.
package file
