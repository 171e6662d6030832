// Package imagedetail shows one finished illustration full size.
package imagedetail

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduvision/internal/images"
	"github.com/abhisek/eduvision/internal/router"
	"github.com/abhisek/eduvision/internal/screen"
	"github.com/abhisek/eduvision/internal/ui/components"
	"github.com/abhisek/eduvision/internal/ui/layout"
	"github.com/abhisek/eduvision/internal/ui/theme"
)

type savedMsg struct {
	Path string
	Err  error
}

// Screen previews an image in the terminal and saves the original file.
type Screen struct {
	img       images.GeneratedImage
	number    int
	outputDir string

	decoded image.Image
	decErr  error

	// cached preview for the last size
	preview     string
	previewSize [2]int

	notice    string
	noticeErr bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the detail screen for img, the number-th card of the batch.
func New(img images.GeneratedImage, number int, outputDir string) *Screen {
	d, err := images.DecodeImage(img.URL)
	return &Screen{
		img:       img,
		number:    number,
		outputDir: outputDir,
		decoded:   d,
		decErr:    err,
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return fmt.Sprintf("圖卡 %d", s.number)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "d", Description: "下載原始檔"},
		{Key: "Esc", Description: "關閉"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.notice, s.noticeErr = "圖片儲存失敗："+msg.Err.Error(), true
		} else {
			s.notice, s.noticeErr = "已下載："+msg.Path, false
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "d":
			img, dir := s.img, s.outputDir
			return s, func() tea.Msg {
				path, err := images.Save(dir, img)
				return savedMsg{Path: path, Err: err}
			}
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	caption := theme.Hint.Width(min(width-4, 100)).Render(
		fmt.Sprintf("[%s] %s", s.img.AspectRatio, s.img.Prompt))

	var notice string
	if s.notice != "" {
		style := theme.Done
		if s.noticeErr {
			style = theme.Failed
		}
		notice = style.Render(s.notice)
	}

	rows := height - lipgloss.Height(caption) - 3
	var body string
	if s.decErr != nil {
		body = theme.Failed.Render("無法預覽圖片：" + s.decErr.Error())
	} else {
		body = s.render(width-4, max(rows, 4))
	}

	content := body + "\n\n" + caption
	if notice != "" {
		content += "\n" + notice
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *Screen) render(cols, rows int) string {
	size := [2]int{cols, rows}
	if s.preview == "" || s.previewSize != size {
		s.preview = components.Thumbnail(s.decoded, cols, rows)
		s.previewSize = size
	}
	return s.preview
}
