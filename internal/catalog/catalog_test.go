package catalog

import "testing"

func TestModulesAreAThroughF(t *testing.T) {
	mods := Modules()
	if len(mods) != 6 {
		t.Fatalf("expected 6 modules, got %d", len(mods))
	}
	for i, m := range mods {
		want := string(rune('A' + i))
		if m.ID != want {
			t.Errorf("module %d: id = %q, want %q", i, m.ID, want)
		}
		if m.Title == "" || m.Description == "" || m.Icon == "" {
			t.Errorf("module %s has empty fields: %+v", m.ID, m)
		}
	}
}

func TestModulesReturnsCopy(t *testing.T) {
	mods := Modules()
	mods[0].Title = "changed"
	if m, _ := LookupModule("A"); m.Title == "changed" {
		t.Fatal("Modules() must not expose the backing slice")
	}
}

func TestIsModuleID(t *testing.T) {
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		if !IsModuleID(id) {
			t.Errorf("IsModuleID(%q) = false", id)
		}
	}
	for _, id := range []string{"", "G", "a", "AB"} {
		if IsModuleID(id) {
			t.Errorf("IsModuleID(%q) = true", id)
		}
	}
}

func TestResolveGoal(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"理解 (Understand)", "理解 (Understand)", true},
		{"understand", "理解 (Understand)", true},
		{"Create", "創作 (Create)", true},
		{"分析", "分析 (Analyze)", true},
		{"  Remember ", "記憶 (Remember)", true},
		{"", "", false},
		{"Memorise", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveGoal(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ResolveGoal(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResolveTiming(t *testing.T) {
	got, ok := ResolveTiming("lecture")
	if !ok || got != "概念講解 (Lecture)" {
		t.Fatalf("ResolveTiming(lecture) = (%q, %v)", got, ok)
	}
	got, ok = ResolveTiming("self-study")
	if !ok || got != "自主學習 (Self-study)" {
		t.Fatalf("ResolveTiming(self-study) = (%q, %v)", got, ok)
	}
}
