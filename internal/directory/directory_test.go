package directory

import "testing"

func intPtr(v int) *int { return &v }

func TestExists(t *testing.T) {
	d := New([]Member{
		{ID: 1, Name: "Harry"},
		{ID: 4, Name: "Tom"},
	})

	tests := []struct {
		name string
		id   *int
		want bool
	}{
		{"nil id", nil, false},
		{"known member", intPtr(1), true},
		{"other known member", intPtr(4), true},
		{"unknown member", intPtr(9), false},
		{"zero id", intPtr(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Exists(tt.id); got != tt.want {
				t.Errorf("Exists(%v) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestNameOf(t *testing.T) {
	d := New([]Member{
		{ID: 2, Name: "John"},
	})

	tests := []struct {
		name string
		id   *int
		want string
	}{
		{"nil id", nil, "Unassigned"},
		{"known member", intPtr(2), "John"},
		{"unknown member", intPtr(7), "Unassigned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.NameOf(tt.id); got != tt.want {
				t.Errorf("NameOf(%v) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestDefaultMembers(t *testing.T) {
	d := New(nil)

	members := d.Members()
	if len(members) != 4 {
		t.Fatalf("Members() returned %d entries, want 4", len(members))
	}
	if members[0].ID != 1 || members[0].Name != "Harry" {
		t.Errorf("first default member = %+v, want {1 Harry}", members[0])
	}
	if !d.Exists(intPtr(4)) {
		t.Error("default directory should contain member 4")
	}
}

func TestMembersReturnsCopy(t *testing.T) {
	d := New(nil)

	got := d.Members()
	got[0] = Member{ID: 99, Name: "Intruder"}

	fresh := d.Members()
	if fresh[0].ID != 1 || fresh[0].Name != "Harry" {
		t.Errorf("mutating the returned slice changed the directory: %+v", fresh[0])
	}
}

func TestMembersPreserveOrder(t *testing.T) {
	members := []Member{
		{ID: 3, Name: "Peter"},
		{ID: 1, Name: "Harry"},
	}
	d := New(members)

	got := d.Members()
	if got[0].ID != 3 || got[1].ID != 1 {
		t.Errorf("Members() = %+v, want configured order preserved", got)
	}
}
