package terminal

import (
	"os"
	"strings"
)

// Capabilities decides how much of the overlay the terminal can draw.
type Capabilities struct {
	TrueColor   bool
	TermProgram string
	NoArt       bool
}

// DetectCapabilities inspects the environment. Album art needs truecolor;
// LYROVERLAY_NO_ART forces it off.
func DetectCapabilities() *Capabilities {
	return detect(os.Getenv)
}

func detect(getenv func(string) string) *Capabilities {
	caps := &Capabilities{TermProgram: getenv("TERM_PROGRAM")}

	switch strings.ToLower(getenv("COLORTERM")) {
	case "truecolor", "24bit":
		caps.TrueColor = true
	}
	if strings.Contains(getenv("TERM"), "direct") || caps.TermProgram == "kitty" || caps.TermProgram == "WezTerm" {
		caps.TrueColor = true
	}

	switch strings.ToLower(getenv("LYROVERLAY_NO_ART")) {
	case "1", "true", "yes", "on":
		caps.NoArt = true
	}

	return caps
}

func (c *Capabilities) ShowArt() bool {
	return c != nil && c.TrueColor && !c.NoArt
}

// Reset restores the cursor, attributes, the main screen and mouse modes in
// case the program exits without bubbletea cleaning up.
func Reset() {
	os.Stdout.WriteString("\033[?25h")
	os.Stdout.WriteString("\033[0m")
	os.Stdout.WriteString("\033[?1049l")
	os.Stdout.WriteString("\033[?1000l")
	os.Stdout.WriteString("\033[?1002l")
	os.Stdout.WriteString("\033[?1003l")
	os.Stdout.WriteString("\033[?1006l")
	os.Stdout.Sync()
}
