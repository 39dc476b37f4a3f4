// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"pulljira/internal/config"
	"pulljira/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.Mutex
	tasks []service.Task
	calls []config.Settings

	// Error injection for testing
	FetchTasksErr error
}

// NewFakeService creates a new FakeService that returns no tasks.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// AddTask appends a task to the fetch result.
func (f *FakeService) AddTask(title, url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{Title: title, URL: url})
}

// Calls returns the settings of every FetchTasks call, in call order.
func (f *FakeService) Calls() []config.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]config.Settings, len(f.calls))
	copy(result, f.calls)
	return result
}

// FetchTasks implements service.Service.
func (f *FakeService) FetchTasks(ctx context.Context, settings config.Settings) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, settings)
	if f.FetchTasksErr != nil {
		return nil, f.FetchTasksErr
	}
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}
