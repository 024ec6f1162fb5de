package tui

// Key is a decoded keystroke
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyChoose
	KeyReset
	KeySize2
	KeySize4
	KeySize6
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyChoose:
		return "choose"
	case KeyReset:
		return "reset"
	case KeySize2:
		return "size-2"
	case KeySize4:
		return "size-4"
	case KeySize6:
		return "size-6"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// Decode splits raw terminal input into keys. Unknown bytes and escape
// sequences are dropped.
func Decode(input []byte) []Key {
	var keys []Key
	for i := 0; i < len(input); i++ {
		b := input[i]

		// CSI arrow keys: ESC [ A..D
		if b == 0x1b && i+2 < len(input) && input[i+1] == '[' {
			switch input[i+2] {
			case 'A':
				keys = append(keys, KeyUp)
			case 'B':
				keys = append(keys, KeyDown)
			case 'C':
				keys = append(keys, KeyRight)
			case 'D':
				keys = append(keys, KeyLeft)
			}
			i += 2
			continue
		}

		if k := decodeByte(b); k != KeyNone {
			keys = append(keys, k)
		}
	}
	return keys
}

func decodeByte(b byte) Key {
	switch b {
	case 'k', 'w':
		return KeyUp
	case 'j', 's':
		return KeyDown
	case 'h', 'a':
		return KeyLeft
	case 'l', 'd':
		return KeyRight
	case ' ', '\r', '\n':
		return KeyChoose
	case 'r':
		return KeyReset
	case '2':
		return KeySize2
	case '4':
		return KeySize4
	case '6':
		return KeySize6
	case 'q', 0x03, 0x04: // q, Ctrl-C, Ctrl-D
		return KeyQuit
	default:
		return KeyNone
	}
}
