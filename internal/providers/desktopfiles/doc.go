// Package desktopfiles discovers launchable applications from freedesktop
// .desktop entries.
//
// The scanner walks configured application directories, parses the
// [Desktop Entry] group of each matching file, and maps it to a catalog
// entry. Identities are desktop-file IDs (relative path, slashes folded to
// dashes, .desktop suffix stripped); earlier directories take precedence
// when the same ID appears twice. Entries that are hidden, not displayable,
// or not of Type=Application are skipped.
package desktopfiles
