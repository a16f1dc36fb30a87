package models

import (
	"reflect"
	"testing"
)

func TestNewNoteDefaults(t *testing.T) {
	n := NewNote("позвонить маме")
	if n.Text != "позвонить маме" {
		t.Errorf("Text = %q", n.Text)
	}
	if n.NoteType != "💡 Обычная" {
		t.Errorf("NoteType = %q", n.NoteType)
	}
	if n.Importance != "🟡 Средняя" {
		t.Errorf("Importance = %q", n.Importance)
	}
	if len(n.Time) != 5 || n.Time[2] != ':' {
		t.Errorf("Time = %q, want HH:MM", n.Time)
	}
}

func TestNotesRoundTrip(t *testing.T) {
	texts := []string{"первая", "вторая"}
	got := NotesToStrings(NotesFromStrings(texts))
	if !reflect.DeepEqual(got, texts) {
		t.Errorf("round trip = %v, want %v", got, texts)
	}
}
