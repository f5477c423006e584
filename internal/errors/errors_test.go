package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/errors"
)

func TestErrorFormatting(t *testing.T) {
	err := errors.NotFound("npc not found")
	assert.Equal(t, "NOT_FOUND: npc not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("redis: connection refused"), "failed to get npc")
	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFoundf("npc with ID %s not found", "npc_1")
	outer := errors.Wrap(inner, "failed to get npc")

	assert.True(t, errors.IsNotFound(outer))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(outer))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "no-op"))
	assert.Nil(t, errors.Wrapf(nil, "no-op %s", "either"))
}

func TestWithMeta(t *testing.T) {
	err := errors.InvalidArgument("bad species").
		WithMeta("species_id", "lizardman")

	meta := errors.GetMeta(err)
	assert.Equal(t, "lizardman", meta["species_id"])
}

func TestGetCodeUnknownError(t *testing.T) {
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, errors.IsInvalidArgument(errors.InvalidArgument("x")))
	assert.True(t, errors.IsAlreadyExists(errors.AlreadyExists("x")))
	assert.True(t, errors.IsFailedPrecondition(errors.FailedPrecondition("x")))
	assert.False(t, errors.IsNotFound(errors.Internal("x")))
}

func TestValidationBuilder(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sessionID", "", vb)
	errors.ValidateEnum("speciesID", "gnome", []string{"human", "dwarf"}, vb)

	err := vb.Build()
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "sessionID")
	assert.Contains(t, err.Error(), "speciesID")
}

func TestValidationBuilderEmpty(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sessionID", "session_1", vb)
	assert.NoError(t, vb.Build())
}
