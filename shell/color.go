package shell

import (
	"io"
)

// color is an ANSI SGR escape sequence.
type color string

const (
	colorReset  color = "\x1b[0m"
	colorRed    color = "\x1b[31m"
	colorGreen  color = "\x1b[32m"
	colorYellow color = "\x1b[33m"
	colorCyan   color = "\x1b[36m"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// paint wraps text in the color if coloring is enabled.
func (s *Shell) paint(c color, text string) string {
	if !s.config.Color {
		return text
	}

	return string(c) + text + string(colorReset)
}

// colorWriter colors every chunk written to the underlying writer.
type colorWriter struct {
	w     io.Writer
	color color
}

func (s *Shell) colored(w io.Writer, c color) io.Writer {
	if !s.config.Color {
		return w
	}

	return &colorWriter{w: w, color: c}
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(cw.w, string(cw.color)); err != nil {
		return 0, err
	}

	n, err := cw.w.Write(p)
	if err != nil {
		return n, err
	}

	if _, err := io.WriteString(cw.w, string(colorReset)); err != nil {
		return n, err
	}

	return n, nil
}
