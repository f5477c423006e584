package wfrp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
)

func TestWrapNPC(t *testing.T) {
	entity := WrapNPC(&wfrp.NPC{ID: "npc_001", Name: "Gunther"})

	assert.Equal(t, "npc_001", entity.GetID())
	assert.Equal(t, "npc", entity.GetType())
	assert.Equal(t, "Gunther", entity.Name)
}
