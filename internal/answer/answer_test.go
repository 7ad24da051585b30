package answer

import (
	"testing"
)

// Sanitize Tests

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"what is 2+2":         "what is 2+2",
		"  padded  ":          "padded",
		"line\nbreak":         "linebreak",
		"tab\tand\rreturn":    "tabandreturn",
		"\x00control\x1f":     "control",
		"":                    "",
		"   \t\n  ":           "",
		"вопрос по-русски":    "вопрос по-русски",
	}

	for in, want := range cases {
		if got := Sanitize(in); got != want {
			t.Errorf("Sanitize(%q): expected %q, got %q", in, want, got)
		}
	}
}

// FirstToken Tests

func TestFirstToken(t *testing.T) {
	cases := map[string]string{
		"Paris":                "Paris",
		"Paris is the capital": "Paris",
		"  42 degrees":         "42",
		"**bold** answer":      "bold",
		"(approximately) 7":    "approximately",
		"\"quoted\" reply":     "quoted",
		"about 4 dollars":      "about",
		"snake_case rest":      "snake_case",
		"":                     "",
		"   ":                  "",
		"!!!":                  "",
	}

	for in, want := range cases {
		if got := FirstToken(in); got != want {
			t.Errorf("FirstToken(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestFirstToken_TrimsEdgesOnly(t *testing.T) {
	// Не-словесные символы срезаются только по краям токена
	if got := FirstToken("co-pilot系"); got == "" {
		t.Error("inner punctuation must not empty the token")
	}
	if got := FirstToken(".42."); got != "42" {
		t.Errorf("expected %q, got %q", "42", got)
	}
}
