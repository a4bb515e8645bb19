package keys

import "strings"

// SlotKeyFromName produces a canonical key for a save-slot name.
// Behavior: trims, lower-cases and replaces spaces with underscores so the
// same human-readable name always maps to the same database row.
func SlotKeyFromName(name string) string {
	s := strings.TrimSpace(name)
	s = strings.ToLower(strings.ReplaceAll(s, " ", "_"))
	return s
}
