// Package images renders the illustration prompts of a lesson plan and
// tracks the status of every image in the batch.
package images

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/eduvision/internal/prompts"
)

// Status is the lifecycle state of one generated image.
type Status string

const (
	StatusPending    Status = "pending"
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Terminal reports whether s is completed or error.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// GeneratedImage is one illustration slot. ID, Prompt and AspectRatio are
// fixed at creation; only Status, URL and Error change.
type GeneratedImage struct {
	ID          string
	Prompt      string
	AspectRatio prompts.AspectRatio
	// URL is a data URI once the image is completed.
	URL    string
	Status Status
	Error  string
}

// Gallery is an ordered batch of images. Methods never modify the
// receiver; they return an updated copy, or the receiver itself when
// nothing matched.
type Gallery []GeneratedImage

// NewBatch creates one pending image per item. IDs share a time-ordered
// UUIDv7 prefix and end with the item index.
func NewBatch(items []prompts.Item) Gallery {
	if len(items) == 0 {
		return Gallery{}
	}
	base := uuid.Must(uuid.NewV7()).String()
	g := make(Gallery, len(items))
	for i, it := range items {
		g[i] = GeneratedImage{
			ID:          fmt.Sprintf("%s-%d", base, i),
			Prompt:      it.Prompt,
			AspectRatio: prompts.NormalizeRatio(string(it.AspectRatio)),
			Status:      StatusPending,
		}
	}
	return g
}

// Index returns the position of id, or -1.
func (g Gallery) Index(id string) int {
	return slices.IndexFunc(g, func(img GeneratedImage) bool { return img.ID == id })
}

// Get returns the image with id.
func (g Gallery) Get(id string) (GeneratedImage, bool) {
	if i := g.Index(id); i >= 0 {
		return g[i], true
	}
	return GeneratedImage{}, false
}

func (g Gallery) update(id string, fn func(*GeneratedImage)) Gallery {
	i := g.Index(id)
	if i < 0 {
		return g
	}
	out := slices.Clone(g)
	fn(&out[i])
	return out
}

// MarkGenerating moves id to generating and clears any previous error.
func (g Gallery) MarkGenerating(id string) Gallery {
	return g.update(id, func(img *GeneratedImage) {
		img.Status = StatusGenerating
		img.Error = ""
	})
}

// Complete stores the rendered image for id.
func (g Gallery) Complete(id, url string) Gallery {
	return g.update(id, func(img *GeneratedImage) {
		img.Status = StatusCompleted
		img.URL = url
	})
}

// Fail records msg as the failure of id.
func (g Gallery) Fail(id, msg string) Gallery {
	return g.update(id, func(img *GeneratedImage) {
		img.Status = StatusError
		img.Error = msg
	})
}

// NextPending returns the first pending image in batch order.
func (g Gallery) NextPending() (GeneratedImage, bool) {
	for _, img := range g {
		if img.Status == StatusPending {
			return img, true
		}
	}
	return GeneratedImage{}, false
}

// Busy reports whether any image is pending or generating. A busy gallery
// blocks starting a new batch.
func (g Gallery) Busy() bool {
	return slices.ContainsFunc(g, func(img GeneratedImage) bool {
		return img.Status == StatusPending || img.Status == StatusGenerating
	})
}

// Generating reports whether a request is in flight for any image.
func (g Gallery) Generating() bool {
	return slices.ContainsFunc(g, func(img GeneratedImage) bool {
		return img.Status == StatusGenerating
	})
}

// Counts returns how many images are in each status.
func (g Gallery) Counts() map[Status]int {
	out := make(map[Status]int, 4)
	for _, img := range g {
		out[img.Status]++
	}
	return out
}
