// Package version holds the maketree release string.
package version

// Version is overridden at link time with -ldflags "-X".
var Version = "0.1.0-dev"
