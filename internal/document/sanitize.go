// Package document prepares generated lesson-plan HTML for display: it
// sanitizes the markup, removes the hidden prompts block and flattens the
// rest into blocks that terminal and PDF renderers can lay out.
package document

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PromptsID is the id of the script element carrying image prompts.
const PromptsID = "prompts"

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// highlight-box and tag classes drive the layout.
	p.AllowAttrs("class").Globally()
	return p
}

// Sanitize applies the display allow-list to generated HTML. Scripts,
// styles, event handlers and unknown elements are dropped.
func Sanitize(raw string) string {
	return policy.Sanitize(raw)
}

// StripPrompts removes every <script id="prompts"> element and returns the
// remaining markup. Input that cannot be parsed is returned unchanged.
func StripPrompts(raw string) string {
	nodes, err := parseFragment(raw)
	if err != nil {
		return raw
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		removePrompts(n)
		if isPromptsScript(n) {
			continue
		}
		if err := html.Render(&buf, n); err != nil {
			return raw
		}
	}
	return buf.String()
}

func parseFragment(raw string) ([]*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	return html.ParseFragment(strings.NewReader(raw), body)
}

func isPromptsScript(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.Script && attr(n, "id") == PromptsID
}

func removePrompts(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if isPromptsScript(c) {
			n.RemoveChild(c)
		} else {
			removePrompts(c)
		}
		c = next
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
