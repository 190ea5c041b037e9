package textutil

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Save", "save"},
		{"spaces", "Save File", "save-file"},
		{"punctuation runs", "Open -- Recent!!", "open-recent"},
		{"leading and trailing", "  ...Help?  ", "help"},
		{"digits", "Tab 2", "tab-2"},
		{"unicode letters", "Größe ändern", "größe-ändern"},
		{"empty", "", ""},
		{"only symbols", "***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		tail  string
		want  string
	}{
		{"fits", "hello", 10, "…", "hello"},
		{"exact", "hello", 5, "…", "hello"},
		{"cut", "hello world", 6, "…", "hello…"},
		{"ascii tail", "hello world", 8, "...", "hello..."},
		{"wide runes", "日本語テキスト", 6, "", "日本語"},
		{"zero width", "hello", 0, "…", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.width, tt.tail); got != tt.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q", tt.input, tt.width, tt.tail, got, tt.want)
			}
		})
	}
}

func TestWidth(t *testing.T) {
	if got := Width("abc"); got != 3 {
		t.Errorf("Width(abc) = %d, want 3", got)
	}
	if got := Width("日本"); got != 4 {
		t.Errorf("Width(日本) = %d, want 4", got)
	}
}
