// Package npc provides storage for generated NPCs
package npc

import (
	"context"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
)

// Repository defines the interface for NPC storage
type Repository interface {
	// Create stores a new NPC
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an NPC by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes an NPC and its session index entry
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListBySessionID retrieves all NPCs for a session
	ListBySessionID(ctx context.Context, input ListBySessionIDInput) (*ListBySessionIDOutput, error)
}

// CreateInput contains the NPC to store
type CreateInput struct {
	NPC *wfrp.NPC
}

// CreateOutput contains the stored NPC
type CreateOutput struct {
	NPC *wfrp.NPC
}

// GetInput contains the ID to look up
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved NPC
type GetOutput struct {
	NPC *wfrp.NPC
}

// DeleteInput contains the ID to delete
type DeleteInput struct {
	ID string
}

// DeleteOutput is the response for a delete
type DeleteOutput struct{}

// ListBySessionIDInput contains the session to list
type ListBySessionIDInput struct {
	SessionID string
}

// ListBySessionIDOutput contains the session's NPCs
type ListBySessionIDOutput struct {
	NPCs []*wfrp.NPC
}
