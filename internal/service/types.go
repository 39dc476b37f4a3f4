// Package service defines the backend-agnostic interface for fetching tasks.
package service

// Issue is a tracked work item as returned by the tracker.
type Issue struct {
	Key     string
	Summary string
}

// Task is the checklist entry derived from an Issue.
type Task struct {
	Title string
	URL   string
}
