package studio

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduvision/internal/images"
	"github.com/abhisek/eduvision/internal/pdfexport"
	"github.com/abhisek/eduvision/internal/prompts"
	"github.com/abhisek/eduvision/internal/router"
	"github.com/abhisek/eduvision/internal/screens/imagedetail"
)

func (s *Studio) resultKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "p":
		return s.exportPDF()
	case "r":
		return s.reset()
	case "g":
		return s.generate()
	case "i":
		return s.startImages()
	case "esc":
		return s.back()
	case "tab":
		if len(s.state.Images) > 0 {
			s.focus = 1 - s.focus
		}
		return nil
	}

	if s.focus == focusGallery {
		return s.galleryKey(msg)
	}
	var cmd tea.Cmd
	s.plan, cmd = s.plan.Update(msg)
	return cmd
}

func (s *Studio) galleryKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if s.gallerySel > 0 {
			s.gallerySel--
		}
	case "down", "j":
		if s.gallerySel < len(s.state.Images)-1 {
			s.gallerySel++
		}
	case "x":
		return s.redo()
	case "d":
		return s.saveImage()
	case "enter":
		img, ok := s.selectedImage()
		if !ok || img.Status != images.StatusCompleted {
			return nil
		}
		detail := imagedetail.New(img, s.gallerySel+1, s.deps.OutputDir)
		return func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
	}
	return nil
}

func (s *Studio) selectedImage() (images.GeneratedImage, bool) {
	if s.gallerySel < 0 || s.gallerySel >= len(s.state.Images) {
		return images.GeneratedImage{}, false
	}
	return s.state.Images[s.gallerySel], true
}

// startImages extracts the prompts of the current plan and renders them
// one at a time. It is refused while a previous batch is unfinished.
func (s *Studio) startImages() tea.Cmd {
	if !s.state.HasResult() || s.state.IsGenerating || s.state.Images.Busy() {
		return nil
	}
	items := prompts.Extract(s.state.FinalResult)
	if len(items) == 0 {
		s.setNotice(images.NoPromptsNotice, true)
		return nil
	}

	s.token++
	s.state = s.state.SetImages(images.NewBatch(items))
	s.gallerySel = 0
	s.focus = focusGallery
	s.setNotice("", false)
	s.deps.Log.Info("image batch started", "token", s.token, "count", len(items))
	return s.spin(s.renderNext())
}

// renderNext issues the request for the first pending image. It is only
// called when the batch starts and from the handler that records the
// previous image's terminal status, so at most one batch request is in
// flight.
func (s *Studio) renderNext() tea.Cmd {
	img, ok := s.state.Images.NextPending()
	if !ok {
		counts := s.state.Images.Counts()
		s.deps.Log.Info("image batch finished",
			"completed", counts[images.StatusCompleted], "failed", counts[images.StatusError])
		return nil
	}
	s.state = s.state.SetImages(s.state.Images.MarkGenerating(img.ID))
	return s.renderCmd(img, false)
}

func (s *Studio) renderCmd(img images.GeneratedImage, redo bool) tea.Cmd {
	token, renderer := s.token, s.deps.Images
	return func() tea.Msg {
		url, err := renderer.Render(context.Background(), img)
		return imageDoneMsg{Token: token, ID: img.ID, URL: url, Err: err, Redo: redo}
	}
}

func (s *Studio) handleImageDone(msg imageDoneMsg) tea.Cmd {
	if msg.Token != s.token {
		s.deps.Log.Debug("stale image dropped", "id", msg.ID, "token", msg.Token, "current", s.token)
		return nil
	}

	g := s.state.Images
	if msg.Err != nil {
		reason := images.GenerationFailed
		if msg.Redo {
			reason = images.RedoFailed
		}
		s.deps.Log.Warn("image failed", "id", msg.ID, "redo", msg.Redo, "error", msg.Err)
		g = g.Fail(msg.ID, reason)
	} else {
		g = g.Complete(msg.ID, msg.URL)
	}
	s.state = s.state.SetImages(g)

	if msg.Redo {
		return nil
	}
	return s.renderNext()
}

// redo renders the selected image again. Refused while it is generating.
func (s *Studio) redo() tea.Cmd {
	img, ok := s.selectedImage()
	if !ok || img.Status == images.StatusGenerating {
		return nil
	}
	s.state = s.state.SetImages(s.state.Images.MarkGenerating(img.ID))
	return s.spin(s.renderCmd(img, true))
}

func (s *Studio) saveImage() tea.Cmd {
	img, ok := s.selectedImage()
	if !ok || img.Status != images.StatusCompleted {
		return nil
	}
	dir := s.deps.OutputDir
	return func() tea.Msg {
		path, err := images.Save(dir, img)
		return imageSavedMsg{Path: path, Err: err}
	}
}

func (s *Studio) handleImageSaved(msg imageSavedMsg) {
	if msg.Err != nil {
		s.deps.Log.Error("save image failed", "error", msg.Err)
		s.setNotice("圖片儲存失敗："+msg.Err.Error(), true)
		return
	}
	s.setNotice("已下載："+msg.Path, false)
}

func (s *Studio) exportPDF() tea.Cmd {
	if s.pdfBusy || !s.state.HasResult() || s.state.IsGenerating {
		return nil
	}
	s.pdfBusy = true

	html, gallery, now, exporter := s.state.FinalResult, s.state.Images, s.deps.Now(), s.deps.PDF
	return s.spin(func() tea.Msg {
		path, err := exporter.Export(context.Background(), html, gallery, now)
		return pdfExportedMsg{Path: path, Err: err}
	})
}

func (s *Studio) handlePDFExported(msg pdfExportedMsg) {
	s.pdfBusy = false
	if msg.Err != nil {
		s.deps.Log.Error("pdf export failed", "error", msg.Err)
		s.setNotice(pdfexport.FailureNotice, true)
		return
	}
	s.setNotice("已儲存 PDF："+msg.Path, false)
}
