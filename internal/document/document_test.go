package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plan = `<h1>光合作用工廠</h1>
<p><span class="tag tag-indigo">10歲</span> <span class="tag">生物</span></p>
<h2>教學活動設計</h2>
<p>活動名稱：<strong>葉子工廠</strong></p>
<ul>
  <li>觀察葉片
    <ul><li>比較顏色</li></ul>
  </li>
  <li>討論陽光</li>
</ul>
<div class="highlight-box"><p>設計理念</p><ul><li>擬人化</li></ul></div>
<table>
  <tr><th>步驟</th><th>時間</th></tr>
  <tr><td>引入</td><td>5 分鐘</td></tr>
</table>
<script id="prompts" type="application/json">[{"prompt":"leaf factory","aspect_ratio":"4:3"}]</script>`

func TestStripPrompts(t *testing.T) {
	out := StripPrompts(plan)
	assert.NotContains(t, out, "leaf factory")
	assert.NotContains(t, out, `id="prompts"`)
	assert.Contains(t, out, "光合作用工廠")
	assert.Contains(t, out, `class="highlight-box"`)

	nested := `<div><p>x</p><script id="prompts">[]</script><script id="other">keep()</script></div>`
	out = StripPrompts(nested)
	assert.NotContains(t, out, `id="prompts"`)
	assert.Contains(t, out, "keep()")

	assert.Equal(t, "<p>plain</p>", StripPrompts("<p>plain</p>"))
}

func TestSanitize(t *testing.T) {
	dirty := `<h1 onclick="evil()">Title</h1><div class="highlight-box">ok</div>` +
		`<script>alert(1)</script><a href="javascript:alert(1)">x</a><img src="x" onerror="bad()">`
	out := Sanitize(dirty)

	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "onerror")
	assert.Contains(t, out, `<div class="highlight-box">ok</div>`)
	assert.Contains(t, out, "<h1>Title</h1>")
}

func TestParse(t *testing.T) {
	doc := Parse(plan)
	require.False(t, doc.Empty())
	assert.Equal(t, "光合作用工廠", doc.Title())

	var kinds []Kind
	for _, b := range doc.Blocks {
		kinds = append(kinds, b.Kind)
	}
	assert.Equal(t, []Kind{
		KindHeading, KindTags, KindHeading, KindParagraph,
		KindListItem, KindListItem, KindListItem,
		KindHighlight, KindTableRow, KindTableRow,
	}, kinds)

	assert.Equal(t, []string{"10歲", "生物"}, doc.Blocks[1].Cells)
	assert.Equal(t, 2, doc.Blocks[2].Level)
	assert.Equal(t, "活動名稱：葉子工廠", doc.Blocks[3].Text)

	assert.Equal(t, Block{Kind: KindListItem, Level: 0, Text: "觀察葉片"}, doc.Blocks[4])
	assert.Equal(t, Block{Kind: KindListItem, Level: 1, Text: "比較顏色"}, doc.Blocks[5])
	assert.Equal(t, "討論陽光", doc.Blocks[6].Text)

	assert.Equal(t, "設計理念\n• 擬人化", doc.Blocks[7].Text)

	assert.True(t, doc.Blocks[8].Header)
	assert.Equal(t, []string{"步驟", "時間"}, doc.Blocks[8].Cells)
	assert.False(t, doc.Blocks[9].Header)
	assert.Equal(t, []string{"引入", "5 分鐘"}, doc.Blocks[9].Cells)

	for _, b := range doc.Blocks {
		assert.NotContains(t, b.Text, "leaf factory")
	}
}

func TestParse_PlainText(t *testing.T) {
	doc := Parse("發生錯誤: quota exceeded")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, KindParagraph, doc.Blocks[0].Kind)
	assert.Equal(t, "發生錯誤: quota exceeded", doc.Blocks[0].Text)
	assert.Empty(t, doc.Title())

	assert.True(t, Parse("   ").Empty())
}

func TestMarkdown(t *testing.T) {
	md := Parse(plan).Markdown()

	for _, want := range []string{
		"# 光合作用工廠\n",
		"`10歲` `生物`\n",
		"## 教學活動設計\n",
		"- 觀察葉片\n  - 比較顏色\n- 討論陽光\n",
		"> 設計理念\n> • 擬人化\n",
		"| 步驟 | 時間 |\n| --- | --- |\n| 引入 | 5 分鐘 |\n",
	} {
		assert.Contains(t, md, want)
	}

	escaped := Document{Blocks: []Block{{Kind: KindParagraph, Text: "a*b_c"}}}.Markdown()
	assert.Equal(t, "a\\*b\\_c\n", escaped)
}

func TestRender(t *testing.T) {
	out := Parse(plan).Render(80)
	assert.Contains(t, out, "光合作用工廠")
	assert.False(t, strings.HasSuffix(out, "\n"))

	short := Parse("<h1>光合作用工廠</h1><p>葉片</p>").Render(80)
	assert.Contains(t, short, "葉片")
	assert.False(t, strings.HasSuffix(short, "\n"), "no blank line after the last block")
}
