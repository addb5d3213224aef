package events

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const esc = 0x1b

// sequences maps the escape sequences we recognise to key types. Both the
// CSI and the SS3 (application cursor mode) forms of the arrows are listed.
var sequences = map[string]tea.KeyType{
	"\x1b[A":  tea.KeyUp,
	"\x1b[B":  tea.KeyDown,
	"\x1b[C":  tea.KeyRight,
	"\x1b[D":  tea.KeyLeft,
	"\x1bOA":  tea.KeyUp,
	"\x1bOB":  tea.KeyDown,
	"\x1bOC":  tea.KeyRight,
	"\x1bOD":  tea.KeyLeft,
	"\x1b[H":  tea.KeyHome,
	"\x1b[F":  tea.KeyEnd,
	"\x1bOH":  tea.KeyHome,
	"\x1bOF":  tea.KeyEnd,
	"\x1b[1~": tea.KeyHome,
	"\x1b[4~": tea.KeyEnd,
	"\x1b[2~": tea.KeyInsert,
	"\x1b[3~": tea.KeyDelete,
	"\x1b[5~": tea.KeyPgUp,
	"\x1b[6~": tea.KeyPgDown,
	"\x1b[Z":  tea.KeyShiftTab,
}

const maxSequenceLen = 4

// DecodeKeys turns one read's worth of raw terminal bytes into keys.
// Invalid UTF-8 and unrecognised escape sequences are dropped.
func DecodeKeys(buf []byte) []tea.Key {
	var keys []tea.Key
	for len(buf) > 0 {
		k, n, ok := decodeKey(buf)
		if n <= 0 {
			n = 1
		}
		buf = buf[n:]
		if ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func decodeKey(b []byte) (tea.Key, int, bool) {
	c := b[0]
	switch {
	case c == esc:
		return decodeEscape(b)
	case c == '\r' || c == '\n':
		return tea.Key{Type: tea.KeyEnter}, 1, true
	case c == 0x7f:
		return tea.Key{Type: tea.KeyBackspace}, 1, true
	case c == ' ':
		return tea.Key{Type: tea.KeySpace, Runes: []rune{' '}}, 1, true
	case c < 0x20:
		return tea.Key{Type: tea.KeyType(c)}, 1, true
	}

	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return tea.Key{}, 1, false
	}
	return tea.Key{Type: tea.KeyRunes, Runes: []rune{r}}, size, true
}

func decodeEscape(b []byte) (tea.Key, int, bool) {
	if len(b) == 1 || b[1] == esc {
		return tea.Key{Type: tea.KeyEsc}, 1, true
	}

	for l := min(len(b), maxSequenceLen); l >= 3; l-- {
		if kt, ok := sequences[string(b[:l])]; ok {
			return tea.Key{Type: kt}, l, true
		}
	}

	switch b[1] {
	case '[':
		return tea.Key{}, csiLength(b), false
	case 'O':
		return tea.Key{}, min(len(b), 3), false
	}

	// ESC followed by a plain key is how terminals send Alt+key.
	inner, n, ok := decodeKey(b[1:])
	if !ok {
		return tea.Key{}, 1 + n, false
	}
	inner.Alt = true
	return inner, 1 + n, true
}

// csiLength returns the length of the CSI sequence at the start of b,
// up to and including its final byte.
func csiLength(b []byte) int {
	for i := 2; i < len(b); i++ {
		if b[i] >= 0x40 && b[i] <= 0x7e {
			return i + 1
		}
	}
	return len(b)
}
