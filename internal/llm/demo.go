package llm

import "encoding/json"

// demoSuggestion follows the suggestion schema.
const demoSuggestion = `{"modules":["A","E"],"reason":"先用擬人化情境引起興趣，再以心智圖統整概念。"}`

// demoPlan is a small but complete plan: sections, a table and the
// prompts script the image pipeline reads.
const demoPlan = `<h1>示範教學計畫：光合作用工廠</h1>
<div class="highlight-box"><p>此為離線示範內容，未呼叫任何 AI 服務。</p></div>
<h2>一、教學目標</h2>
<ul>
<li>能說出光合作用需要的原料與產物。</li>
<li>能用「工廠」比喻解釋葉綠體的功能。</li>
</ul>
<h2>二、視覺化策略</h2>
<table>
<tr><th>模組</th><th>設計</th><th>使用時機</th></tr>
<tr><td>A 教材視覺化</td><td>葉子變身成綠色工廠，陽光是電力，水與二氧化碳是原料</td><td>引起動機</td></tr>
<tr><td>E 知識圖表</td><td>以心智圖整理原料、條件與產物</td><td>複習統整</td></tr>
</table>
<h2>三、生圖提示詞</h2>
<p>以下提示詞可直接用於「進行圖像生成」。</p>
<script id="prompts" type="application/json">[
  {"prompt": "A cheerful cartoon leaf drawn as a green factory, sunlight powering it, water and CO2 entering as raw materials, oxygen and sugar leaving, labels in Traditional Chinese", "aspect_ratio": "4:3"},
  {"prompt": "A clean mind map about photosynthesis with branches for inputs, conditions and outputs, flat educational style, labels in Traditional Chinese", "aspect_ratio": "16:9"}
]</script>`

// newDemoProviders answers every call with canned content so the whole
// flow can be tried without credentials.
func newDemoProviders() *Providers {
	return &Providers{
		Fast: &MockProvider{Fallback: &MockResponse{Content: json.RawMessage(demoSuggestion)}},
		// Text responses are carried verbatim in Content.
		Plan:  &MockProvider{Fallback: &MockResponse{Content: json.RawMessage(demoPlan)}},
		Image: &MockImageProvider{Placeholder: true},
	}
}
