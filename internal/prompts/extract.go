// Package prompts recovers image-generation prompts from a generated plan.
//
// A plan carries its prompts in a JSON array wrapped in
// <script id="prompts" type="application/json">. When a model ignores that
// contract and emits a fenced ```json block instead, the fenced block is
// used.
package prompts

import (
	"encoding/json"
	"regexp"
	"strings"
)

// AspectRatio is one of the image shapes the image model accepts.
type AspectRatio string

const (
	Ratio1x1  AspectRatio = "1:1"
	Ratio4x3  AspectRatio = "4:3"
	Ratio16x9 AspectRatio = "16:9"
)

// DefaultRatio is used when a prompt names no ratio or an unsupported one.
const DefaultRatio = Ratio4x3

// NormalizeRatio maps s to a supported ratio, falling back to DefaultRatio.
func NormalizeRatio(s string) AspectRatio {
	switch AspectRatio(strings.TrimSpace(s)) {
	case Ratio1x1:
		return Ratio1x1
	case Ratio16x9:
		return Ratio16x9
	default:
		return DefaultRatio
	}
}

// Item is a single prompt with its requested shape.
type Item struct {
	Prompt      string      `json:"prompt"`
	AspectRatio AspectRatio `json:"aspect_ratio"`
}

var (
	scriptPattern = regexp.MustCompile(`(?is)<script\b[^>]*\bid\s*=\s*["']prompts["'][^>]*>(.*?)</script\s*>`)
	fencedPattern = regexp.MustCompile("(?s)```json\n(.*?)```")
)

// Extract returns the prompts embedded in html in document order.
// Elements with an empty prompt are dropped. It never fails: input it
// cannot understand yields an empty slice.
func Extract(html string) []Item {
	if m := scriptPattern.FindStringSubmatch(html); m != nil {
		return parseArray(m[1])
	}
	if m := fencedPattern.FindStringSubmatch(html); m != nil {
		return parseArray(m[1])
	}
	return []Item{}
}

type rawItem struct {
	Prompt           any `json:"prompt"`
	AspectRatioSnake any `json:"aspect_ratio"`
	AspectRatioCamel any `json:"aspectRatio"`
}

func parseArray(body string) []Item {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(body)), &elems); err != nil {
		return []Item{}
	}

	items := make([]Item, 0, len(elems))
	for _, raw := range elems {
		var r rawItem
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}
		prompt, _ := r.Prompt.(string)
		prompt = strings.TrimSpace(prompt)
		if prompt == "" {
			continue
		}
		items = append(items, Item{
			Prompt:      prompt,
			AspectRatio: NormalizeRatio(firstString(r.AspectRatioSnake, r.AspectRatioCamel)),
		})
	}
	return items
}

func firstString(vals ...any) string {
	for _, v := range vals {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}
