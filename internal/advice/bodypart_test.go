package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBodyPart_NoiseStripping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"knee", "knee"},
		{"knee pain", "knee"},
		{"my knee hurts", "knee"},
		{"severe knee injury", "knee"},
		{"my left shoulder is really sore", "shoulder"},
		{"swollen ankle", "ankle"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			part, ok := ResolveBodyPart(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, part.Name)
		})
	}
}

func TestResolveBodyPart_MultiWordFirst(t *testing.T) {
	// "upper back" must win over the single-word "back" also present.
	part, ok := ResolveBodyPart("upper back ache")
	require.True(t, ok)
	assert.Equal(t, "upper back", part.Name)
	assert.Equal(t, GroupSpineCore, part.Group)

	part, ok = ResolveBodyPart("pain in my lower back")
	require.True(t, ok)
	assert.Equal(t, "lower back", part.Name)
}

func TestResolveBodyPart_Aliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"knees", "knee"},
		{"biceps pain", "bicep"},
		{"my calves hurt", "calf"},
		{"abs", "abdomen"},
		{"lumbar pain", "lower back"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			part, ok := ResolveBodyPart(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, part.Name)
		})
	}
}

func TestResolveBodyPart_CompactedFallback(t *testing.T) {
	part, ok := ResolveBodyPart("lowerback")
	require.True(t, ok)
	assert.Equal(t, "lower back", part.Name)
	assert.Equal(t, GroupSpineCore, part.Group)
}

func TestResolveBodyPart_NotFound(t *testing.T) {
	for _, input := range []string{"", "   ", "xyz123", "pain", "my pain hurts"} {
		t.Run("invalid/"+input, func(t *testing.T) {
			_, ok := ResolveBodyPart(input)
			assert.False(t, ok)
		})
	}
}

func TestCatalogInvariants(t *testing.T) {
	// Every alias must resolve to a part that exists in the catalog.
	for alias, canonical := range partAliases {
		_, ok := canonicalParts[canonical]
		assert.Truef(t, ok, "alias %q points at unknown part %q", alias, canonical)
	}
	// Every multi-word part must be in the catalog too.
	for _, part := range multiWordParts {
		_, ok := canonicalParts[part]
		assert.Truef(t, ok, "multi-word part %q missing from catalog", part)
	}
}

func TestPlanFor_KnownGroupsAndGeneric(t *testing.T) {
	for name, group := range canonicalParts {
		plan := PlanFor(BodyPart{Name: name, Group: group})
		assert.NotEmpty(t, plan.Avoid, name)
		assert.NotEmpty(t, plan.Replace, name)
		assert.NotEmpty(t, plan.Warmup, name)
		assert.NotEmpty(t, plan.Intensity, name)
	}

	generic := PlanFor(BodyPart{Name: "tailbone", Group: GroupOther})
	assert.Contains(t, generic.Avoid[0], "tailbone")
	assert.Contains(t, generic.Warmup[0], "tailbone")
}
