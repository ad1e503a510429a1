// Package opener hands files and URIs to external programs: the user's
// browser, the default file handler, or a configured editor.
//
// Every operation walks an ordered chain of strategies (configured editor,
// platform opener commands, desktop integration) and stops at the first one
// that launches. Launching is best-effort: a spawned process counts as
// launched when it is still running once the liveness window has passed.
// A slow opener that crashes after the window is still reported as
// launched.
package opener
