package model

// TaskFilter holds the optional list predicates. Absent fields apply no
// filter; present fields are ANDed together.
type TaskFilter struct {
	// Search matches tasks whose title or description contains the substring.
	Search string
	// Status is "complete" or "incomplete"; any other value applies no filter.
	Status string
	// AssigneeID matches tasks assigned to exactly this member.
	AssigneeID *int
	// Priority matches exactly. Must be validated before it reaches storage.
	Priority string
	// Due is "overdue", "today" or "upcoming"; any other value applies no
	// filter. Buckets are evaluated against Today.
	Due string
	// Today is the reference date for the due buckets, resolved once per
	// list call so every row is compared against the same day.
	Today Date
}
