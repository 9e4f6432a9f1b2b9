package styles

import "testing"

func TestManager_Toggle(t *testing.T) {
	m := NewManager("skim-dark")

	if name := m.Toggle(); name != "skim-light" {
		t.Errorf("Toggle() = %q, want skim-light", name)
	}
	if name := m.Toggle(); name != "skim-dark" {
		t.Errorf("second Toggle() = %q, want skim-dark", name)
	}
}

func TestManager_UnknownThemeFallsBack(t *testing.T) {
	m := NewManager("no-such-theme")
	if m.Current() == nil || m.Current().Name != "skim-dark" {
		t.Error("unknown default theme should fall back to skim-dark")
	}

	if err := m.SetTheme("no-such-theme"); err == nil {
		t.Error("SetTheme(unknown) should error")
	}
}

func TestTheme_StylesBuiltOnce(t *testing.T) {
	theme := NewDarkTheme()
	if theme.S() != theme.S() {
		t.Error("S() should memoize the compiled styles")
	}
	if theme.S().Markdown.Document.Color == nil {
		t.Error("markdown style config missing document color")
	}
}

func TestApplyBoldGradient(t *testing.T) {
	theme := NewDarkTheme()

	if got := ApplyBoldGradient("", theme.Primary, theme.Accent); got != "" {
		t.Errorf("gradient of empty string = %q, want empty", got)
	}
	if got := ApplyBoldGradient("skim", theme.Primary, theme.Accent); got == "" {
		t.Error("gradient of non-empty string came back empty")
	}
}
