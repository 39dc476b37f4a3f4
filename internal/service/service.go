// Package service defines the backend-agnostic interface for fetching tasks.
package service

import (
	"context"

	"pulljira/internal/config"
)

// Service defines the interface for task backend operations.
// All tracker API calls go through this interface.
// Commands never import the tracker client directly.
type Service interface {
	// FetchTasks runs the configured query once and returns one Task per
	// issue, in the order the tracker returned them.
	// Network failures and non-success statuses are returned unchanged;
	// there is no retry.
	FetchTasks(ctx context.Context, settings config.Settings) ([]Task, error)
}
