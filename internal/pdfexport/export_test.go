package pdfexport

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduvision/internal/images"
)

const plan = `<h1>Photosynthesis Factory</h1>
<p><span class="tag">Grade 4</span><span class="tag">Biology</span></p>
<h2>Teaching Activity Design</h2>
<p>Leaves turn sunlight into sugar.</p>
<ul><li>Observe leaves<ul><li>Compare colours</li></ul></li></ul>
<div class="highlight-box">Design idea</div>
<table><tr><th>Step</th><th>Time</th></tr><tr><td>Intro</td><td>5 min</td></tr></table>
<script id="prompts" type="application/json">[{"prompt":"leaf factory"}]</script>`

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: 120, B: uint8(y), A: 128})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "eduvision-plan-2026-03-07.pdf", FileName(now))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	exp := NewExporter(FontSource{}, dir, nil)

	g := images.Gallery{
		{ID: "img-0", Status: images.StatusCompleted, URL: images.EncodeDataURI("image/png", pngBytes(t, 40, 30))},
		{ID: "img-1", Status: images.StatusError, Error: images.GenerationFailed},
		{ID: "img-2", Status: images.StatusPending},
	}
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	path, err := exp.Export(context.Background(), plan, g, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "eduvision-plan-2026-10-17.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.False(t, bytes.Contains(data, []byte("leaf factory")), "prompts block must not be rendered")
}

func TestExport_SkipsUndecodableImage(t *testing.T) {
	exp := NewExporter(FontSource{}, t.TempDir(), nil)
	g := images.Gallery{{ID: "bad", Status: images.StatusCompleted, URL: images.EncodeDataURI("image/png", []byte("nope"))}}

	_, err := exp.Export(context.Background(), "<p>Plan</p>", g, time.Now())
	assert.NoError(t, err)
}

func TestExport_Empty(t *testing.T) {
	exp := NewExporter(FontSource{}, t.TempDir(), nil)

	_, err := exp.Export(context.Background(), `<script id="prompts">[]</script>`, nil, time.Now())
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExport_MissingFont(t *testing.T) {
	exp := NewExporter(FontSource{Path: filepath.Join(t.TempDir(), "missing.ttf")}, t.TempDir(), nil)

	_, err := exp.Export(context.Background(), plan, nil, time.Now())
	assert.Error(t, err)
}

func TestFontSource_DownloadsOnce(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("ttf-bytes"))
	}))
	defer srv.Close()

	cache := t.TempDir()
	src := FontSource{URL: srv.URL + "/font/jf-openhuninn-1.1.ttf", CacheDir: cache, Client: srv.Client()}
	require.True(t, src.Configured())

	for i := 0; i < 2; i++ {
		data, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ttf-bytes", string(data))
	}
	assert.EqualValues(t, 1, hits.Load())
	assert.FileExists(t, filepath.Join(cache, "fonts", "jf-openhuninn-1.1.ttf"))
}

func TestFontSource_PathWins(t *testing.T) {
	local := filepath.Join(t.TempDir(), "local.ttf")
	require.NoError(t, os.WriteFile(local, []byte("local"), 0o644))

	src := FontSource{Path: local, URL: "http://127.0.0.1:0/never"}
	data, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", string(data))
}

func TestFontSource_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	src := FontSource{URL: srv.URL + "/f.ttf", CacheDir: t.TempDir(), Client: srv.Client()}
	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "404"), err.Error())

	assert.False(t, FontSource{}.Configured())
}

func TestToJPEG(t *testing.T) {
	out, w, h, err := toJPEG(pngBytes(t, 30, 20))
	require.NoError(t, err)
	assert.Equal(t, 30, w)
	assert.Equal(t, 20, h)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 20), decoded.Bounds())

	_, w, h, err = toJPEG(pngBytes(t, 3000, 1500))
	require.NoError(t, err)
	assert.Equal(t, maxImagePx, w)
	assert.Equal(t, maxImagePx/2, h)

	_, _, _, err = toJPEG([]byte("not an image"))
	assert.Error(t, err)
}
