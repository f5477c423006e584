package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/errors"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/orchestrators/gametest"
	npcsvc "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/services/npc"
)

const (
	serverName = "warhammer-mcp"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Config holds the services exposed through the MCP server
type Config struct {
	NPCService  npcsvc.Service
	TestService gametest.Service
}

// Validate ensures all required services are provided
func (c *Config) Validate() error {
	if c.NPCService == nil {
		return errors.InvalidArgument("npc service is required")
	}
	if c.TestService == nil {
		return errors.InvalidArgument("test service is required")
	}
	return nil
}

// NewServer creates the MCP server with every tool registered
func NewServer(cfg *Config) (*mcp.Server, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(server, NPCGenerateTool(), NPCGenerateHandler(cfg.NPCService))
	mcp.AddTool(server, NPCCreateTool(), NPCCreateHandler(cfg.NPCService))
	mcp.AddTool(server, NPCGetTool(), NPCGetHandler(cfg.NPCService))
	mcp.AddTool(server, NPCListTool(), NPCListHandler(cfg.NPCService))
	mcp.AddTool(server, NPCDeleteTool(), NPCDeleteHandler(cfg.NPCService))
	mcp.AddTool(server, TestRollTool(), TestRollHandler(cfg.TestService))
	mcp.AddTool(server, RollHistoryTool(), RollHistoryHandler(cfg.TestService))
	mcp.AddTool(server, RollClearTool(), RollClearHandler(cfg.TestService))
	mcp.AddTool(server, ArchetypeListTool(), ArchetypeListHandler(cfg.NPCService))
	mcp.AddTool(server, SpeciesListTool(), SpeciesListHandler(cfg.NPCService))

	return server, nil
}
