package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/localediff/internal/catalog"
)

// ---------------------------------------------------------------------------
// Placeholder extraction
// ---------------------------------------------------------------------------

func TestExtractVars_BothForms(t *testing.T) {
	vars := ExtractVars("Hello {{name}}, you have [[count]] items")
	assert.Equal(t, []string{"count", "name"}, vars)
}

func TestExtractVars_CaseLowered(t *testing.T) {
	vars := ExtractVars("{{UserName}} / [[COUNT]]")
	assert.Equal(t, []string{"count", "username"}, vars)
}

func TestExtractVars_Deduplicated(t *testing.T) {
	vars := ExtractVars("{{name}} and {{name}} again, [[name]] too")
	assert.Equal(t, []string{"name"}, vars)
}

func TestExtractVars_NoPlaceholders(t *testing.T) {
	assert.Empty(t, ExtractVars("plain text, no variables"))
}

func TestExtractVars_IgnoresInvalidNames(t *testing.T) {
	// Spaces and dashes are outside the placeholder grammar.
	assert.Empty(t, ExtractVars("{{bad name}} [[bad-name]]"))
}

// ---------------------------------------------------------------------------
// Variable validation
// ---------------------------------------------------------------------------

func TestValidateVariables_Mismatch(t *testing.T) {
	from := catalog.FlatMap{"cart.items": "You have {{count}} items"}
	to := catalog.FlatMap{"cart.items": "Vous avez des articles"}

	mismatches := ValidateVariables(from, to)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "cart.items", mismatches[0].Key)
	assert.Equal(t, []string{"count"}, mismatches[0].FromVars)
	assert.Empty(t, mismatches[0].ToVars)
}

func TestValidateVariables_MatchingSetsPass(t *testing.T) {
	from := catalog.FlatMap{"greet": "Hi {{name}}, [[count]] new"}
	to := catalog.FlatMap{"greet": "Salut {{name}}, [[count]] nouveaux"}

	assert.Empty(t, ValidateVariables(from, to))
}

func TestValidateVariables_MissingKeysSkipped(t *testing.T) {
	from := catalog.FlatMap{"only.from": "{{name}}"}
	to := catalog.FlatMap{}

	assert.Empty(t, ValidateVariables(from, to))
}

func TestValidateVariables_EmptyVsEmptyNeverMismatches(t *testing.T) {
	from := catalog.FlatMap{"plain": "no vars here"}
	to := catalog.FlatMap{"plain": "rien ici"}

	assert.Empty(t, ValidateVariables(from, to))
}

func TestValidateVariables_SortedByKey(t *testing.T) {
	from := catalog.FlatMap{
		"b.key": "{{x}}",
		"a.key": "{{y}}",
	}
	to := catalog.FlatMap{
		"b.key": "none",
		"a.key": "none",
	}

	mismatches := ValidateVariables(from, to)
	require.Len(t, mismatches, 2)
	assert.Equal(t, "a.key", mismatches[0].Key)
	assert.Equal(t, "b.key", mismatches[1].Key)
}
