package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"cv.pdf", "cv.pdf"},
		{"  Currículum Ana.docx ", "Currículum Ana.docx"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\ana\cv.txt`, "cv.txt"},
		{"cv\x00\x1f.pdf", "cv.pdf"},
		{"cv..final.pdf", "cv..final.pdf"},
	}
	for _, tc := range cases {
		in, want := tc.in, tc.want
		got, err := SanitizeFileName(in)
		if err != nil {
			t.Fatalf("SanitizeFileName(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeFileNameRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "..", "dir/", "a/.."} {
		if _, err := SanitizeFileName(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestSanitizeFileNameTruncatesKeepingExtension(t *testing.T) {
	long := make([]rune, 300)
	for i := range long {
		long[i] = 'a'
	}
	got, err := SanitizeFileName(string(long) + ".pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len([]rune(got)); n != maxFileNameRunes {
		t.Fatalf("expected %d runes, got %d", maxFileNameRunes, n)
	}
	if got[len(got)-4:] != ".pdf" {
		t.Fatalf("expected extension kept, got %q", got)
	}
}
