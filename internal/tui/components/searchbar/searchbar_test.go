package searchbar

import "testing"

func TestInsert_MultiByteRunes(t *testing.T) {
	m := New()

	m.insert("界")
	m.insert("é")
	m.insert("x")

	if got := m.Value(); got != "界éx" {
		t.Errorf("Value() = %q, want %q", got, "界éx")
	}
	if m.cursorPos != 3 {
		t.Errorf("cursorPos = %d, want 3 (one per rune)", m.cursorPos)
	}
}

func TestInsert_AtCursorMidValue(t *testing.T) {
	m := New()
	m.insert("ab")
	m.cursorPos = 1

	m.insert("é")

	if got := m.Value(); got != "aéb" {
		t.Errorf("Value() = %q, want %q", got, "aéb")
	}
	if m.cursorPos != 2 {
		t.Errorf("cursorPos = %d, want 2", m.cursorPos)
	}
}

func TestBackspace_RemovesWholeRune(t *testing.T) {
	m := New()
	m.insert("a界b")

	m.backspace()
	m.backspace()

	if got := m.Value(); got != "a" {
		t.Errorf("Value() = %q, want %q", got, "a")
	}
	if m.cursorPos != 1 {
		t.Errorf("cursorPos = %d, want 1", m.cursorPos)
	}

	// Backspace at the start is a no-op.
	m.backspace()
	m.backspace()
	if !m.IsEmpty() || m.cursorPos != 0 {
		t.Errorf("Value() = %q cursorPos = %d, want empty at 0", m.Value(), m.cursorPos)
	}
}

func TestDeleteForward_RemovesRuneUnderCursor(t *testing.T) {
	m := New()
	m.insert("a界b")
	m.cursorPos = 1

	m.deleteForward()

	if got := m.Value(); got != "ab" {
		t.Errorf("Value() = %q, want %q", got, "ab")
	}

	// Delete at the end is a no-op.
	m.cursorPos = len(m.value)
	m.deleteForward()
	if got := m.Value(); got != "ab" {
		t.Errorf("Value() = %q after end delete, want %q", got, "ab")
	}
}

func TestReset_ClearsValueAndCursor(t *testing.T) {
	m := New()
	m.insert("query")
	m.Reset()

	if !m.IsEmpty() || m.cursorPos != 0 {
		t.Errorf("Value() = %q cursorPos = %d after Reset", m.Value(), m.cursorPos)
	}
}
