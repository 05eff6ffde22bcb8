package ai_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/ai"
	"sitegen_server/internal/types"
)

func TestParseRefinementPlainObject(t *testing.T) {
	refined, err := ai.ParseRefinement(`{"pageType":"shop","tone":"elegant"}`)
	require.NoError(t, err)
	assert.Equal(t, "shop", refined["pageType"])
	assert.Equal(t, "elegant", refined["tone"])
}

func TestParseRefinementCodeFence(t *testing.T) {
	output := "```json\n{\"pageType\":\"portfolio\"}\n```"
	refined, err := ai.ParseRefinement(output)
	require.NoError(t, err)
	assert.Equal(t, "portfolio", refined["pageType"])
}

func TestParseRefinementEnvelope(t *testing.T) {
	refined, err := ai.ParseRefinement(`{"spec":{"pageType":"about"}}`)
	require.NoError(t, err)
	assert.Equal(t, "about", refined["pageType"])
}

func TestParseRefinementEnvelopeOnlyWhenSingleKey(t *testing.T) {
	refined, err := ai.ParseRefinement(`{"spec":{"pageType":"about"},"tone":"minimal"}`)
	require.NoError(t, err)
	// Two top-level keys: treat the whole object as the refinement.
	assert.Equal(t, "minimal", refined["tone"])
	assert.Contains(t, refined, "spec")
}

func TestParseRefinementNonJSON(t *testing.T) {
	_, err := ai.ParseRefinement("Gern! Hier ist dein Entwurf.")
	require.Error(t, err)

	var refErr *types.RefinementError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "non-JSON response", refErr.Reason)
}

func TestNewRefinerDefaultsModel(t *testing.T) {
	r := ai.NewRefiner("sk-test", "")
	assert.NotNil(t, r)
}
