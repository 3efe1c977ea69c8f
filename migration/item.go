package migration

// Item pairs a caller-assigned migration version with one statement.
// Ordering and bookkeeping of versions belong to whatever runs the migrations.
type Item struct {
	Version   int
	Statement Statement
}

// FilterVersion returns the items whose version equals v, preserving order.
func FilterVersion(items []Item, v int) []Item {
	var out []Item
	for _, it := range items {
		if it.Version == v {
			out = append(out, it)
		}
	}
	return out
}
