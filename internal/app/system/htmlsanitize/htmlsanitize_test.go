package htmlsanitize_test

import (
	"testing"

	"github.com/takafulhq/takaful/internal/app/system/htmlsanitize"
)

func TestStrip(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Ali Hassan", "Ali Hassan"},
		{"script dropped", `<script>alert("x")</script>Ali`, "Ali"},
		{"tags stripped", "<b>Ali</b> <i>Hassan</i>", "Ali Hassan"},
		{"entities unescaped", "Ali &amp; Sara", "Ali & Sara"},
		{"surrounding space trimmed", "  Ali  ", "Ali"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := htmlsanitize.Strip(tc.in); got != tc.want {
				t.Errorf("Strip(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
