package images

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduvision/internal/prompts"
)

func threeItems() []prompts.Item {
	return []prompts.Item{
		{Prompt: "a leaf in sunlight", AspectRatio: prompts.Ratio4x3},
		{Prompt: "chloroplast diagram", AspectRatio: prompts.Ratio1x1},
		{Prompt: "slide cover", AspectRatio: "21:9"},
	}
}

func TestNewBatch(t *testing.T) {
	g := NewBatch(threeItems())
	require.Len(t, g, 3)

	seen := map[string]bool{}
	for i, img := range g {
		assert.Equal(t, StatusPending, img.Status)
		assert.Empty(t, img.URL)
		assert.True(t, strings.HasSuffix(img.ID, "-"+string(rune('0'+i))), "id %s lacks index suffix", img.ID)
		assert.False(t, seen[img.ID], "duplicate id %s", img.ID)
		seen[img.ID] = true
	}
	assert.Equal(t, prompts.Ratio16x9, NewBatch([]prompts.Item{{Prompt: "x", AspectRatio: "16:9"}})[0].AspectRatio)
	assert.Equal(t, prompts.Ratio4x3, g[2].AspectRatio, "unsupported ratio falls back to 4:3")

	other := NewBatch(threeItems())
	assert.NotEqual(t, g[0].ID, other[0].ID, "batches must not share ids")
}

func TestNewBatch_Empty(t *testing.T) {
	assert.Empty(t, NewBatch(nil))
}

func TestGallery_CopyOnWrite(t *testing.T) {
	g := NewBatch(threeItems())
	id := g[1].ID

	g2 := g.MarkGenerating(id)
	assert.Equal(t, StatusPending, g[1].Status, "receiver must not change")
	assert.Equal(t, StatusGenerating, g2[1].Status)

	g3 := g2.Complete(id, "data:image/png;base64,AA==")
	assert.Equal(t, StatusCompleted, g3[1].Status)
	assert.Equal(t, "data:image/png;base64,AA==", g3[1].URL)

	g4 := g3.Fail(id, RedoFailed)
	assert.Equal(t, StatusError, g4[1].Status)
	assert.Equal(t, RedoFailed, g4[1].Error)

	g5 := g4.MarkGenerating(id)
	assert.Empty(t, g5[1].Error, "generating clears the previous error")

	for _, gi := range []Gallery{g2, g3, g4, g5} {
		assert.Equal(t, g[0], gi[0])
		assert.Equal(t, g[2], gi[2])
		assert.Equal(t, g[1].ID, gi[1].ID)
		assert.Equal(t, g[1].Prompt, gi[1].Prompt)
		assert.Equal(t, g[1].AspectRatio, gi[1].AspectRatio)
	}
}

func TestGallery_UnknownIDReturnsReceiver(t *testing.T) {
	g := NewBatch(threeItems())

	for _, got := range []Gallery{
		g.MarkGenerating("nope"),
		g.Complete("nope", "x"),
		g.Fail("nope", "x"),
	} {
		require.Len(t, got, len(g))
		assert.Same(t, &g[0], &got[0], "unknown id must return the same backing array")
	}
}

func TestGallery_NextPendingAndBusy(t *testing.T) {
	g := NewBatch(threeItems())
	assert.True(t, g.Busy())
	assert.False(t, g.Generating())

	next, ok := g.NextPending()
	require.True(t, ok)
	assert.Equal(t, g[0].ID, next.ID)

	g = g.MarkGenerating(g[0].ID)
	assert.True(t, g.Generating())
	g = g.Complete(g[0].ID, "u").Fail(g[1].ID, GenerationFailed)

	next, ok = g.NextPending()
	require.True(t, ok)
	assert.Equal(t, g[2].ID, next.ID)

	g = g.Complete(g[2].ID, "u")
	_, ok = g.NextPending()
	assert.False(t, ok)
	assert.False(t, g.Busy())
	assert.Equal(t, map[Status]int{StatusCompleted: 2, StatusError: 1}, g.Counts())
	assert.True(t, StatusError.Terminal())
	assert.False(t, StatusGenerating.Terminal())
}
