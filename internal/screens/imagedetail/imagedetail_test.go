package imagedetail

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduvision/internal/images"
)

func pngURI(t *testing.T) string {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{G: 180, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	return images.EncodeDataURI("image/png", buf.Bytes())
}

func TestView(t *testing.T) {
	img := images.GeneratedImage{ID: "abc-0", Prompt: "a leaf", AspectRatio: "4:3", URL: pngURI(t), Status: images.StatusCompleted}
	s := New(img, 2, t.TempDir())

	assert.Equal(t, "圖卡 2", s.Title())
	view := s.View(100, 30)
	assert.Contains(t, view, "▀")
	assert.Contains(t, view, "a leaf")
}

func TestView_Undecodable(t *testing.T) {
	img := images.GeneratedImage{ID: "x", URL: "data:image/png;base64,AAAA", Status: images.StatusCompleted}
	s := New(img, 1, t.TempDir())
	assert.Contains(t, s.View(100, 30), "無法預覽圖片")
}

func TestDownload(t *testing.T) {
	dir := t.TempDir()
	img := images.GeneratedImage{ID: "abc-1", URL: pngURI(t), Status: images.StatusCompleted}
	s := New(img, 1, dir)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	require.NotNil(t, cmd)
	msg := cmd()
	s.Update(msg)

	path := filepath.Join(dir, images.FileName(img))
	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(s.notice, path))
	assert.False(t, s.noticeErr)
}
