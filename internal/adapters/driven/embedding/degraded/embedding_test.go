package degraded

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbed_Deterministic(t *testing.T) {
	s := NewEmbeddingService(0)
	ctx := context.Background()

	a, err := s.Embed(ctx, "mandatory eligibility requirements")
	require.NoError(t, err)
	b, err := s.Embed(ctx, "mandatory eligibility requirements")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEmbed_DistinctTexts(t *testing.T) {
	s := NewEmbeddingService(0)
	ctx := context.Background()

	a, err := s.Embed(ctx, "first text")
	require.NoError(t, err)
	b, err := s.Embed(ctx, "second text")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestEmbed_Dimensions(t *testing.T) {
	s := NewEmbeddingService(64)

	vec, err := s.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Len(t, vec, 64)
	assert.Equal(t, 64, s.Dimensions())
}

func TestEmbed_UnitNorm(t *testing.T) {
	s := NewEmbeddingService(128)

	vec, err := s.Embed(context.Background(), "some text")
	require.NoError(t, err)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, norm, 1e-6)
}

func TestEmbedBatch_OrderPreserving(t *testing.T) {
	s := NewEmbeddingService(32)
	ctx := context.Background()

	vecs, err := s.EmbedBatch(ctx, []string{"a", "b", "a"})
	require.NoError(t, err)
	require.Len(t, vecs, 3)

	assert.Equal(t, vecs[0], vecs[2])
	assert.NotEqual(t, vecs[0], vecs[1])
}

func TestDegradedFlag(t *testing.T) {
	s := NewEmbeddingService(0)
	assert.True(t, s.Degraded())
	assert.Equal(t, "degraded-random", s.ModelName())
	assert.NoError(t, s.Ping(context.Background()))
}
