// Package firestore provides the Cloud Firestore client and its docstore.Store backend.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// Config holds Firestore connection configuration.
// The client honours FIRESTORE_EMULATOR_HOST when it is set.
type Config struct {
	ProjectID  string
	DatabaseID string
}

// Database returns the database id, defaulting to "(default)".
func (c Config) Database() string {
	if c.DatabaseID == "" {
		return firestore.DefaultDatabaseID
	}
	return c.DatabaseID
}

// NewClient creates a new Firestore client from config.
// The caller is responsible for closing the client when done.
func NewClient(ctx context.Context, cfg Config) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore project id is required")
	}
	client, err := firestore.NewClientWithDatabase(ctx, cfg.ProjectID, cfg.Database())
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}
