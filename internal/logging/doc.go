// Package logging is the process-wide log facility of the application.
//
// A *Facility owns the logging state: the enabled flag, the stdout mirroring
// flag and the file sink. Records are encoded as zerolog events and turned
// back into tagged text lines by a custom writer:
//
//	[ i ] Main logger initialized.
//	[!W!] Process ended immediately.
//	[!E!] Error running command.
//	[!E!] exec: "kde-open": executable file not found in $PATH
//
// Severities, most verbose first: finest, finer, fine, info, warning, severe.
//
// Output destinations:
//   - File: every record while logging is enabled
//   - Stdout: finest, finer, fine and info when mirroring is on
//   - Stderr: warning and severe when mirroring is on
package logging
