package domain

import "slices"

// Status is the workflow column an issue currently occupies.
// The set is open-ended: any non-empty string is a valid column name.
type Status string

// Well-known columns.
const (
	StatusBacklog    Status = "Backlog" // Default status for new issues
	StatusTodo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// DefaultStatus is assigned to new issues that do not supply their own status.
const DefaultStatus = StatusBacklog

// DefaultColumns returns the board columns used when none are configured.
func DefaultColumns() []Status {
	return []Status{
		StatusBacklog,
		StatusTodo,
		StatusInProgress,
		StatusDone,
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	if s == "" {
		return "(none)"
	}
	return string(s)
}

// BoardColumns returns the columns to render for issues: the configured columns
// in order, followed by any other status seen in issues, in first-seen order.
func BoardColumns(configured []Status, issues []Issue) []Status {
	columns := slices.Clone(configured)
	for _, issue := range issues {
		if !slices.Contains(columns, issue.Status) {
			columns = append(columns, issue.Status)
		}
	}
	return columns
}

// GroupByStatus groups issues by status preserving list order within each group.
func GroupByStatus(issues []Issue) map[Status][]Issue {
	groups := make(map[Status][]Issue)
	for _, issue := range issues {
		groups[issue.Status] = append(groups[issue.Status], issue)
	}
	return groups
}

// Neighbor returns the column offset steps away from current within columns.
// It returns current unchanged if current is not a column or the move would
// leave the board.
func Neighbor(columns []Status, current Status, offset int) Status {
	idx := slices.Index(columns, current)
	if idx < 0 {
		return current
	}
	next := idx + offset
	if next < 0 || next >= len(columns) {
		return current
	}
	return columns[next]
}
