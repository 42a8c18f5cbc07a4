package classification

// Table maps a category name to the license ids classified under it. Looking
// up a missing category yields an empty slice.
type Table map[string][]string

// Category returns license ids of the category.
func (t Table) Category(name string) []string {
	if t == nil {
		return nil
	}
	return t[name]
}

// Licenses returns every classified license id once, in lexical order.
func (t Table) Licenses() []string {
	all := Set{}
	for _, ids := range t {
		for _, id := range ids {
			all[id] = struct{}{}
		}
	}
	return all.Sorted()
}
