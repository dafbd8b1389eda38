package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, "escape" for a lone ESC followed by
// something else.
func tryReadArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// codeForByte converts a raw terminal byte into a binding code.
func codeForByte(b byte) string {
	switch {
	case b == 3: // Ctrl+C
		return "q"
	case b == ' ':
		return "space"
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a'))
	case b >= 32 && b < 127:
		return string(rune(b))
	}
	return ""
}

// ReadKey puts the terminal into raw mode, reads one key and returns its
// binding code. An unknown key yields an empty code.
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b, err := readByte()
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}

	if b == 0x1b {
		return tryReadArrowKey(), nil
	}
	return codeForByte(b), nil
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
