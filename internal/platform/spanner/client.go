// Package spanner provides Cloud Spanner client initialization and a
// docstore.Store backend that keeps documents as JSON rows.
package spanner

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/spanner"
)

// Config identifies the database holding the Documents table.
// The client honours SPANNER_EMULATOR_HOST when it is set.
type Config struct {
	ProjectID  string
	InstanceID string
	DatabaseID string
}

// Validate reports the first missing identifier.
func (c Config) Validate() error {
	switch {
	case c.ProjectID == "":
		return errors.New("spanner project id is required")
	case c.InstanceID == "":
		return errors.New("spanner instance id is required")
	case c.DatabaseID == "":
		return errors.New("spanner database id is required")
	}
	return nil
}

// DSN returns the Spanner database connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s",
		c.ProjectID, c.InstanceID, c.DatabaseID)
}

// Emulated reports whether the client will talk to a local emulator.
func Emulated() bool {
	return os.Getenv("SPANNER_EMULATOR_HOST") != ""
}

// NewClient validates cfg and opens a client. The caller closes it.
func NewClient(ctx context.Context, cfg Config) (*spanner.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := spanner.NewClient(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create spanner client for %s: %w", cfg.DSN(), err)
	}
	return client, nil
}
