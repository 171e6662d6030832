package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("基本資訊", "👩‍🏫 教師模式", 100)
	if !strings.Contains(h, "EduVision") {
		t.Error("expected brand in header")
	}
	if !strings.Contains(h, "基本資訊") {
		t.Error("expected title in header")
	}
	if !strings.Contains(h, "教師模式") {
		t.Error("expected badge in header")
	}
	if got := lipgloss.Width(h); got != 100 {
		t.Errorf("expected header width 100, got %d", got)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Tab", Description: "Next field"}}, 80)
	if !strings.Contains(f, "Tab") || !strings.Contains(f, "Next field") {
		t.Errorf("footer missing hint: %q", f)
	}
}
