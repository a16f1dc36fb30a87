package models

import "time"

// Note is an annotated day note. On disk a day's notes are plain
// strings; the annotations exist only while editing and collapse
// back to the text on save.
type Note struct {
	Text       string `json:"text"`
	NoteType   string `json:"note_type"`
	Importance string `json:"importance"`
	Time       string `json:"time"`
}

// NewNote creates a note with default annotations, stamped with the
// current time of day.
func NewNote(text string) Note {
	return Note{
		Text:       text,
		NoteType:   "💡 Обычная",
		Importance: "🟡 Средняя",
		Time:       time.Now().Format("15:04"),
	}
}

// NotesFromStrings wraps stored note strings into annotated notes.
func NotesFromStrings(texts []string) []Note {
	notes := make([]Note, 0, len(texts))
	for _, text := range texts {
		notes = append(notes, Note{Text: text})
	}
	return notes
}

// NotesToStrings collapses annotated notes back into their stored form.
func NotesToStrings(notes []Note) []string {
	texts := make([]string, 0, len(notes))
	for _, n := range notes {
		texts = append(texts, n.Text)
	}
	return texts
}
