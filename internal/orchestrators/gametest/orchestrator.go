// Package gametest implements the orchestrator for d100 characteristic tests
package gametest

import (
	"context"
	"log/slog"
	"time"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/engine"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/errors"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/idgen"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/repositories/rolls"
)

// DefaultHistoryTTL bounds how long a session's roll history is kept
const DefaultHistoryTTL = 4 * time.Hour

// characteristicCodes are the accepted characteristic inputs
var characteristicCodes = func() []string {
	codes := make([]string, 0, len(wfrp.AllCharacteristics))
	for _, c := range wfrp.AllCharacteristics {
		codes = append(codes, string(c))
	}
	return codes
}()

// Service defines the interface for characteristic test operations
type Service interface {
	RollTest(ctx context.Context, input *RollTestInput) (*RollTestOutput, error)
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)
}

// RollTestInput describes one characteristic test
type RollTestInput struct {
	SessionID      string
	Subject        string
	Characteristic wfrp.Characteristic
	Target         int32
}

// RollTestOutput contains the recorded result
type RollTestOutput struct {
	Roll rolls.TestRoll
}

// GetHistoryInput identifies the session to read
type GetHistoryInput struct {
	SessionID string
}

// GetHistoryOutput contains the session's roll history
type GetHistoryOutput struct {
	History *rolls.RollHistory
}

// ClearHistoryInput identifies the session to clear
type ClearHistoryInput struct {
	SessionID string
}

// ClearHistoryOutput reports how many rolls were discarded
type ClearHistoryOutput struct {
	RollsDeleted int32
}

// Config holds the dependencies for the test orchestrator
type Config struct {
	Engine      engine.Engine
	RollsRepo   rolls.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.RollsRepo == nil {
		vb.RequiredField("RollsRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine    engine.Engine
	rollsRepo rolls.Repository
	idGen     idgen.Generator
}

// NewOrchestrator creates a new test orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:    cfg.Engine,
		rollsRepo: cfg.RollsRepo,
		idGen:     cfg.IDGenerator,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

func (o *orchestrator) RollTest(ctx context.Context, input *RollTestInput) (*RollTestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateRequired("characteristic", string(input.Characteristic), vb)
	if input.Characteristic != "" {
		errors.ValidateEnum("characteristic", string(input.Characteristic), characteristicCodes, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.engine.RollCharacteristicTest(ctx, &engine.RollCharacteristicTestInput{
		Target: input.Target,
	})
	if err != nil {
		return nil, err
	}

	roll := rolls.TestRoll{
		RollID:         o.idGen.Generate(),
		Subject:        input.Subject,
		Characteristic: string(input.Characteristic),
		Target:         result.Target,
		Roll:           result.Roll,
		Success:        result.Success,
		SuccessLevels:  result.SuccessLevels,
	}

	if _, err := o.rollsRepo.Append(ctx, rolls.AppendInput{
		SessionID: input.SessionID,
		Roll:      roll,
		TTL:       DefaultHistoryTTL,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to record roll")
	}

	slog.DebugContext(ctx, "rolled characteristic test",
		"session_id", input.SessionID,
		"characteristic", input.Characteristic,
		"target", input.Target,
		"roll", result.Roll,
		"success", result.Success,
		"success_levels", result.SuccessLevels)

	return &RollTestOutput{Roll: roll}, nil
}

func (o *orchestrator) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.rollsRepo.Get(ctx, rolls.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}
	return &GetHistoryOutput{History: out.History}, nil
}

func (o *orchestrator) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.rollsRepo.Delete(ctx, rolls.DeleteInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}
	return &ClearHistoryOutput{RollsDeleted: out.RollsDeleted}, nil
}
