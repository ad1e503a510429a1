package platform

// Command constants
const (
	OpenCommand      = "open"
	ExplorerCommand  = "explorer"
	XDGOpenCommand   = "xdg-open"
	GnomeOpenCommand = "gnome-open"
	KDEOpenCommand   = "kde-open"
)

// PathPlaceholder is replaced by the target in every argument template token
const PathPlaceholder = "%s"

// DefaultOpenerArgs passes the target as the only argument
const DefaultOpenerArgs = PathPlaceholder

// URLOpeners returns the programs tried, in order, to open a URI.
// The returned slice is a fresh copy.
func URLOpeners(f Family) []string {
	switch f {
	case FamilyLinux:
		return []string{GnomeOpenCommand, XDGOpenCommand, KDEOpenCommand}
	case FamilyMac:
		return []string{OpenCommand}
	case FamilyWindows:
		return []string{ExplorerCommand}
	default:
		return nil
	}
}

// FileOpeners returns the programs tried, in order, to open a local file.
func FileOpeners(f Family) []string {
	switch f {
	case FamilyLinux:
		return []string{KDEOpenCommand, GnomeOpenCommand, XDGOpenCommand}
	case FamilyMac:
		return []string{OpenCommand}
	case FamilyWindows:
		return []string{ExplorerCommand}
	default:
		return nil
	}
}
