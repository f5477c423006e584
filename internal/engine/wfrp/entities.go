package wfrp

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
)

// NPCEntity wraps wfrp.NPC to implement the core.Entity interface
type NPCEntity struct {
	*wfrp.NPC
}

// GetID returns the NPC's ID
func (n *NPCEntity) GetID() string {
	return n.ID
}

// GetType returns the entity type for rpg-toolkit
func (n *NPCEntity) GetType() string {
	return "npc"
}

var _ core.Entity = (*NPCEntity)(nil)

// WrapNPC converts a wfrp.NPC to an NPCEntity
func WrapNPC(npc *wfrp.NPC) *NPCEntity {
	return &NPCEntity{NPC: npc}
}
