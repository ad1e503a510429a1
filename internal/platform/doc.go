// Package platform contains OS integration glue: operating system family
// detection, the per-family opener command tables, and filesystem helpers
// for the application data directory.
package platform
