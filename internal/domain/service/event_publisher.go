package service

import (
	"context"
)

// RecipeEvent describes one completed versioning-engine operation. Events are
// published after the transaction commits; consumers get the action type and
// the version number the operation appended.
type RecipeEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	RecipeID      string `json:"recipe_id"`
	ClientID      string `json:"client_id"`
	Action        string `json:"action"` // CREATE, UPDATE, DELETE, REFRESH, RESTORE
	VersionNumber int    `json:"version_number"`
}

// EventPublisher defines the interface for publishing recipe lifecycle events
// to a message queue.
type EventPublisher interface {
	// PublishRecipeEvent publishes a recipe lifecycle event for async consumers.
	PublishRecipeEvent(ctx context.Context, event *RecipeEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
