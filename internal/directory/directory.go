// Package directory holds the fixed table of assignable team members. The
// table is injected at construction and never mutated, so lookups are safe
// from any goroutine.
package directory

// Member is an immutable (id, name) pair.
type Member struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

const unassignedName = "Unassigned"

type Directory struct {
	members []Member
	byID    map[int]string
}

// New builds a directory over the given members. An empty slice falls back
// to the default team.
func New(members []Member) *Directory {
	if len(members) == 0 {
		members = defaultMembers()
	}
	byID := make(map[int]string, len(members))
	for _, m := range members {
		byID[m.ID] = m.Name
	}
	return &Directory{members: members, byID: byID}
}

func defaultMembers() []Member {
	return []Member{
		{ID: 1, Name: "Harry"},
		{ID: 2, Name: "John"},
		{ID: 3, Name: "Peter"},
		{ID: 4, Name: "Tom"},
	}
}

// Exists reports whether id references a known member. A nil id is not a
// member.
func (d *Directory) Exists(id *int) bool {
	if id == nil {
		return false
	}
	_, ok := d.byID[*id]
	return ok
}

// NameOf resolves the member name for id, or "Unassigned" when id is nil or
// unknown.
func (d *Directory) NameOf(id *int) string {
	if id == nil {
		return unassignedName
	}
	name, ok := d.byID[*id]
	if !ok {
		return unassignedName
	}
	return name
}

// Members returns the directory entries in their configured order. The
// returned slice is a copy, so callers cannot mutate the directory.
func (d *Directory) Members() []Member {
	out := make([]Member, len(d.members))
	copy(out, d.members)
	return out
}
