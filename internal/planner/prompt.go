package planner

import (
	"fmt"
	"strings"

	"github.com/abhisek/eduvision/internal/wizard"
)

// SystemPrompt is the behavioural contract sent with every request: the
// six module definitions and the HTML output format with its embedded
// prompts block.
const SystemPrompt = "\n# 🎓 教育視覺化系統\n\n" +
	"> 本提示詞可作為 **System Prompt / GPTs / 任意生成式 AI 的核心指令**，\n" +
	"> 用於教材視覺化、繪本生成、教學圖卡、遊戲化學習與沉浸式場景模擬。\n\n" +
	"---\n\n" +
	"## 一、角色設定（System Role）\n\n" +
	"你是一位 **「教育視覺化設計系統（Educational Visualization Engine）」**。\n" +
	"你的核心任務是根據使用者需求，設計可直接用於教學的「視覺化學習體驗」。\n\n" +
	"## 二、輸出格式規定 (CRITICAL)\n\n" +
	"**請務必輸出純 HTML 格式**，不要使用 Markdown。你的輸出將直接渲染在網頁上並轉換為 PDF。\n\n" +
	"### HTML 結構要求：\n" +
	"1. 不要包含 ```html 或 ``` 代碼塊標記。\n" +
	"2. 使用語意化的 HTML 標籤 (`<h1>`, `<h2>`, `<h3>`, `<p>`, `<ul>`, `<li>`, `<table>`)。\n" +
	"3. **生圖提示詞 (Prompts)** 必須封裝在一個帶有 id=\"prompts\" 的 script 標籤中，格式為 JSON。\n" +
	"   例如：\n" +
	"   `<script id=\"prompts\" type=\"application/json\">[{\"prompt\": \"...\", \"aspectRatio\": \"4:3\"}]</script>`\n\n" +
	"### 樣式建議 (可使用的 CSS Class)：\n" +
	"- `.plan-content`: 最外層容器 (系統會自動處理，你只需關注內部)。\n" +
	"- `<h1>`: 主標題\n" +
	"- `<h2>`: 章節標題 (例如：教學活動設計)\n" +
	"- `<div class=\"highlight-box\">`: 用於強調重點或設計理念。\n" +
	"- `<span class=\"tag tag-indigo\">`: 用於標籤 (如科目、年級)。\n\n" +
	"---\n\n" +
	"## 三、核心行為原則\n" +
	"1. **先問需求，再生成內容**（禁止直接輸出完整教材）\n" +
	"2. 不預設學生能力與年齡\n" +
	"3. 所有視覺必須「可教、可講、可問」\n\n" +
	"---\n\n" +
	"## 【六大功能模組規格定義】\n\n" +
	"### 🧩 模組 A｜教材視覺化 (Visualizing Concepts)\n" +
	"*   **原則**：每一個重要概念一張圖。\n" +
	"*   **視覺策略**：擬人化、擬物化映射、情境轉換。\n" +
	"*   **輸出**：單張 A4/B4 高解析度示意圖 (4:3)。\n\n" +
	"### 📖 模組 B｜繪本場景與角色 (Storybook Components)\n" +
	"*   **1. 角色定稿**：多名角色安排於同一張紙張 (4:3)。\n" +
	"*   **2. 繪本場景圖**：滿版設計 (4:3)。\n\n" +
	"### 🗂️ 模組 C｜客製化教學圖卡 (Flashcards)\n" +
	"*   **規格**：**16:9** (模擬雙面合併輸出)。\n" +
	"*   **視覺結構**：左側圖像 (1:1) + 右側文字 (1:1)。\n\n" +
	"### 🎮 模組 D｜遊戲化學習場景 (Gamification)\n" +
	"*   **1. 陞官圖**：結合「擲骰子」路徑的遊戲地圖 (4:3)。\n" +
	"*   **2. 大家來找碴**：兩張看似相同但有差異的圖 (4:3)。\n\n" +
	"### 📊 模組 E｜知識圖表 (Knowledge Chart)\n" +
	"*   **規格**：單張 A4 整合 (4:3)。\n" +
	"*   **類型**：心智圖、魚骨圖、階層圖。\n\n" +
	"### 🖥️ 模組 F｜教學簡報 (Presentation Slides)\n" +
	"*   **規格**：16:9。\n" +
	"*   **內容**：一個投影片一張圖。\n\n" +
	"---\n\n" +
	"## 【教學輸出內容結構】\n\n" +
	"請依序生成以下 HTML 內容：\n\n" +
	"### 1️⃣ 標題區\n" +
	"包含教學計畫名稱、適用年級、科目、學習目標等標籤。\n\n" +
	"### 2️⃣ 教學活動設計 (Teaching Activity Design)\n" +
	"*   活動名稱\n" +
	"*   使用模組\n" +
	"*   活動流程\n" +
	"*   對應學習目標\n\n" +
	"### 3️⃣ 視覺／圖像設計說明 (Visual/Image Design Description)\n" +
	"*   場景描述（可直接生圖）\n" +
	"*   元素與學習意義對應\n" +
	"*   版面配置說明\n\n" +
	"### 4️⃣ 圖像生成策略 (Hidden Data)\n" +
	"*   **這是最重要的部分**：請將生圖 Prompt 以 JSON 格式放在 `<script id=\"prompts\" type=\"application/json\">...</script>` 中。\n"

// ChineseTextRule is appended to every image prompt when the visual
// language is Chinese.
const ChineseTextRule = "Unless specified otherwise, all text in the image must be in Traditional Chinese."

func buildSuggestMessage(s wizard.State) string {
	var b strings.Builder

	b.WriteString("Based on the following context, suggest the best combination of educational visualization modules (A, B, C, D, E, F).\n\n")
	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- User Mode: %s\n", s.Mode.Label())
	fmt.Fprintf(&b, "- Student Age/Grade: %s\n", s.Age)
	fmt.Fprintf(&b, "- Subject: %s\n", s.Subject)
	fmt.Fprintf(&b, "- Topic: %s\n", s.Topic)
	fmt.Fprintf(&b, "- Learning Goal: %s\n", s.LearningGoal)
	fmt.Fprintf(&b, "- Timing: %s\n", s.Timing)

	b.WriteString(`
Please refer to the "Template Recommendations" in your system knowledge.

Output Format:
Return a JSON object. "modules" lists the recommended module ids (usually two).
"reason" is a 1-sentence reason IN TRADITIONAL CHINESE (繁體中文).
Example: {"modules": ["C", "B"], "reason": "因為語文學習適合透過圖像記憶與情境故事結合。"}
`)
	return b.String()
}

func visualLanguageInstruction(l wizard.VisualLanguage) string {
	if l == wizard.LanguageEnglish {
		return "Visual Content Language: English. In the JSON prompts, specific keywords must be English."
	}
	return "Visual Content Language: Traditional Chinese.\n" +
		"CRITICAL PROMPT RULE: When writing the prompts in the JSON block, you MUST include the following explicit instruction in every prompt:\n" +
		"\"" + ChineseTextRule + "\"\n\n" +
		"This ensures that not just the title, but all labels, diagrams, and secondary text are rendered in Traditional Chinese characters."
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func buildPlanMessage(s wizard.State) string {
	var b strings.Builder

	b.WriteString("I have completed the requirements collection. Please generate the educational visualization design.\n\n")
	fmt.Fprintf(&b, "1. Mode: %s\n", s.Mode.Label())
	fmt.Fprintf(&b, "2. Target: %s, %s, %s\n", s.Age, s.Subject, s.Topic)
	fmt.Fprintf(&b, "3. Goal: %s, Timing: %s\n", s.LearningGoal, s.Timing)
	fmt.Fprintf(&b, "4. Selected Modules: %s\n", strings.Join(s.SelectedModules(), ", "))
	fmt.Fprintf(&b, "5. Student Traits: %s (Differentiation: %s)\n", s.Interests, yesNo(s.Differentiation))
	fmt.Fprintf(&b, "6. %s\n", visualLanguageInstruction(s.VisualLanguage))

	b.WriteString(`
Please output the full design following the "Teaching Output Format" structure.

IMPORTANT:
1. The main content MUST be in TRADITIONAL CHINESE (繁體中文).
2. The output MUST be valid HTML (not Markdown).
3. You MUST use Google Search to verify facts.

Sections to generate (HTML):
- Title Section (h1, tags)
- Teaching Activity Design (h2, p, ul)
- Visual/Image Design Description (h2, p, highlight-box)

CRITICAL INSTRUCTION FOR PROMPTS (JSON):
At the very end of your HTML response, you MUST append a script tag containing the prompts in JSON format.

Format:
<script id="prompts" type="application/json">
[
  {
    "prompt": "Detailed English prompt...",
    "aspect_ratio": "4:3"
  },
  ...
]
</script>

[PROMPT WRITING RULES]:
1. **BASE LANGUAGE**: Write the 'prompt' in English to ensure high-quality artistic generation.
2. **TEXT RENDERING**:
   - If "Visual Content Language" is **Traditional Chinese**: You MUST append "` + ChineseTextRule + `" to the prompt.
   - If "Visual Content Language" is **English**: Use English text labels.
3. **ASPECT RATIO** selection:
   - **Module F (Teaching Slides)**: MUST be "16:9".
   - **Module C (Flashcards)**: MUST be "16:9".
   - **Module A, B, D, E** (Printable A4/B4): MUST be "4:3".
4. **MULTI-IMAGE GENERATION**:
   - If **Module D** is selected: You MUST provide **2 separate prompt objects**.
`)
	return b.String()
}
