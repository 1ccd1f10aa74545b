// Package version provides build version information for the Late SDK and
// its command-line tool.
//
// Version, git commit, branch, and build time are set at compile time
// via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/late-go/version.Version=1.0.0" ./cmd/late
package version
