// Package rolls provides repository interface and types for session roll history
package rolls

import (
	"context"
	"time"
)

// RollHistory is a session's recent characteristic test rolls
type RollHistory struct {
	// Game session the rolls belong to
	SessionID string

	// The recorded rolls, oldest first
	Rolls []TestRoll

	// When this history was created
	CreatedAt time.Time

	// When this history expires
	ExpiresAt time.Time
}

// TestRoll records one d100 characteristic test
type TestRoll struct {
	// Unique identifier for this roll within the history
	RollID string

	// Name of the NPC or character tested, if any
	Subject string

	// Characteristic that was tested (e.g., "ws")
	Characteristic string

	// Target value rolled against
	Target int32

	// The d100 result
	Roll int32

	// Whether the test succeeded
	Success bool

	// Success levels scored
	SuccessLevels int32
}

// AppendInput contains parameters for recording a roll
type AppendInput struct {
	SessionID string
	Roll      TestRoll
	TTL       time.Duration // How long a fresh history should live
}

// AppendOutput contains the updated history
type AppendOutput struct {
	History *RollHistory
}

// GetInput contains parameters for retrieving a session's roll history
type GetInput struct {
	SessionID string
}

// GetOutput contains the retrieved history
type GetOutput struct {
	History *RollHistory
}

// DeleteInput contains parameters for clearing a session's roll history
type DeleteInput struct {
	SessionID string
}

// DeleteOutput contains the result of clearing a history
type DeleteOutput struct {
	RollsDeleted int32
}

// Repository stores per-session roll histories
type Repository interface {
	// Append records a roll, creating the history if needed
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get retrieves a session's roll history
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete clears a session's roll history
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
