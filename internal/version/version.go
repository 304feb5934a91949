// Package version carries the build version, set with
// -ldflags "-X subseq/internal/version.Version=...".
package version

var Version = "dev"
