package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DisabledWithoutKey(t *testing.T) {
	for _, cfg := range []Config{{}, {Provider: "openai"}, {Provider: "none", APIKey: "k"}} {
		c, err := New(cfg)
		require.NoError(t, err)

		_, err = c.Embed(context.Background(), []string{"glycerin"})
		assert.ErrorIs(t, err, ErrDisabled)
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(Config{Provider: "cohere", APIKey: "k"})
	assert.Error(t, err)
}

func TestNew_OpenAIDefaultModel(t *testing.T) {
	c, err := New(Config{Provider: "OpenAI", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "text-embedding-3-small", c.Model())
}
