package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPrimaryBlockDropsEmptyPrompts(t *testing.T) {
	html := `<h1>光合作用</h1><p>intro</p>
<script id="prompts" type="application/json">[{"prompt":"a cat","aspect_ratio":"4:3"},{"prompt":"","aspectRatio":"1:1"}]</script>
<p>trailer</p>`

	got := Extract(html)
	require.Len(t, got, 1)
	assert.Equal(t, Item{Prompt: "a cat", AspectRatio: Ratio4x3}, got[0])
}

func TestExtractMalformedJSONInsideMarker(t *testing.T) {
	html := `<script id="prompts" type="application/json">[{"prompt": "a cat",]</script>
` + "```json\n[{\"prompt\":\"fallback\"}]\n```"

	got := Extract(html)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractAspectRatioFields(t *testing.T) {
	html := `<script id="prompts" type="application/json">
[
  {"prompt": "slide", "aspect_ratio": "16:9"},
  {"prompt": "card", "aspectRatio": "1:1"},
  {"prompt": "both", "aspect_ratio": "16:9", "aspectRatio": "1:1"},
  {"prompt": "none"},
  {"prompt": "odd", "aspect_ratio": "3:4"},
  {"prompt": "numeric", "aspect_ratio": 4}
]
</script>`

	got := Extract(html)
	want := []Item{
		{Prompt: "slide", AspectRatio: Ratio16x9},
		{Prompt: "card", AspectRatio: Ratio1x1},
		{Prompt: "both", AspectRatio: Ratio16x9},
		{Prompt: "none", AspectRatio: Ratio4x3},
		{Prompt: "odd", AspectRatio: Ratio4x3},
		{Prompt: "numeric", AspectRatio: Ratio4x3},
	}
	assert.Equal(t, want, got)
}

func TestExtractSkipsNonObjectElements(t *testing.T) {
	html := `<script id="prompts" type="application/json">["loose string", 42, {"prompt": 7}, {"prompt": "  kept  "}]</script>`

	got := Extract(html)
	require.Len(t, got, 1)
	assert.Equal(t, "kept", got[0].Prompt)
}

func TestExtractMarkerIsCaseInsensitive(t *testing.T) {
	html := `<SCRIPT ID="prompts" TYPE="application/json">[{"prompt":"upper"}]</SCRIPT>`

	got := Extract(html)
	require.Len(t, got, 1)
	assert.Equal(t, "upper", got[0].Prompt)
}

func TestExtractFallbackFencedBlock(t *testing.T) {
	html := "<p>model ignored the script contract</p>\n```json\n[{\"prompt\":\"fish\",\"aspectRatio\":\"16:9\"},{\"prompt\":\"\"}]\n```\n```json\n[{\"prompt\":\"second block\"}]\n```"

	got := Extract(html)
	assert.Equal(t, []Item{{Prompt: "fish", AspectRatio: Ratio16x9}}, got)
}

func TestExtractOnlyFirstMarkerIsUsed(t *testing.T) {
	html := `<script id="prompts" type="application/json">[{"prompt":"first"}]</script>
<script id="prompts" type="application/json">[{"prompt":"second"}]</script>`

	got := Extract(html)
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].Prompt)
}

func TestExtractTotal(t *testing.T) {
	inputs := []string{
		"",
		"<p>no prompts here</p>",
		`<script id="prompts" type="application/json"></script>`,
		`<script id="prompts" type="application/json">{"prompt":"object not array"}</script>`,
		`<script id="prompts" type="application/json">null</script>`,
		"```json\nnot json```",
	}
	for _, in := range inputs {
		got := Extract(in)
		assert.NotNil(t, got, "input %q", in)
		assert.Empty(t, got, "input %q", in)
	}
}

func TestExtractIdempotent(t *testing.T) {
	html := `<script id="prompts" type="application/json">[{"prompt":"a","aspect_ratio":"1:1"},{"prompt":"b"}]</script>`
	assert.Equal(t, Extract(html), Extract(html))
}

func TestNormalizeRatio(t *testing.T) {
	tests := map[string]AspectRatio{
		"1:1":   Ratio1x1,
		"4:3":   Ratio4x3,
		"16:9":  Ratio16x9,
		" 16:9": Ratio16x9,
		"9:16":  Ratio4x3,
		"":      Ratio4x3,
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeRatio(in), "NormalizeRatio(%q)", in)
	}
}
