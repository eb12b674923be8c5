package teams

// Team is one league team as shown in selection UIs.
type Team struct {
	Key  string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the fixed, ordered list of league teams for a season.
type Catalog []Team

// Contains reports whether the catalog has a team with the given key.
func (c Catalog) Contains(key string) bool {
	for _, t := range c {
		if t.Key == key {
			return true
		}
	}
	return false
}

// IDMap translates external numeric team ids to internal team keys. Ids with
// no entry are unknown and excluded from team-scoped views.
type IDMap map[int]string

// Key returns the internal key for an external id, or "" when unmapped.
func (m IDMap) Key(externalID int) string {
	return m[externalID]
}
