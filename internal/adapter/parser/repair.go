package parser

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	errNotUTF8        = errors.New("repaired bytes are not valid UTF-8")
	errLoneSurrogate  = errors.New("unpaired UTF-16 surrogate")
	errNotStringLit   = errors.New("value is not a JSON string")
	errBadEscape      = errors.New("invalid escape sequence")
	errInvalidByteSeq = errors.New("invalid byte sequence")
	utf16LittleEndian = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// repairLatin1 undoes the Facebook export mangling: the UTF-8 bytes of every
// string were written out as if each byte were a Latin-1 character.
func repairLatin1(s string) (string, error) {
	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("encoding as latin-1: %w", err)
	}
	if !utf8.ValidString(raw) {
		return "", errNotUTF8
	}
	return raw, nil
}

// repairUTF16 decodes a JSON string literal as a sequence of UTF-16 code
// units, keeping surrogate halves whether they were written as \u escapes or
// as individually encoded code points, and joins them into proper code points.
func repairUTF16(lit json.RawMessage) (string, error) {
	units, err := utf16Units(lit)
	if err != nil {
		return "", err
	}
	if err := checkSurrogates(units); err != nil {
		return "", err
	}

	buf := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}
	out, err := utf16LittleEndian.NewDecoder().Bytes(buf)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16: %w", err)
	}
	return string(out), nil
}

func checkSurrogates(units []uint16) error {
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		switch {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return fmt.Errorf("%w at unit %d", errLoneSurrogate, i)
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF:
			return fmt.Errorf("%w at unit %d", errLoneSurrogate, i)
		}
	}
	return nil
}

func utf16Units(lit json.RawMessage) ([]uint16, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return nil, errNotStringLit
	}
	body := lit[1 : len(lit)-1]
	units := make([]uint16, 0, len(body))

	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case c == '\\':
			if i+1 >= len(body) {
				return nil, errBadEscape
			}
			switch body[i+1] {
			case '"', '\\', '/':
				units = append(units, uint16(body[i+1]))
			case 'b':
				units = append(units, '\b')
			case 'f':
				units = append(units, '\f')
			case 'n':
				units = append(units, '\n')
			case 'r':
				units = append(units, '\r')
			case 't':
				units = append(units, '\t')
			case 'u':
				if i+6 > len(body) {
					return nil, errBadEscape
				}
				v, err := strconv.ParseUint(string(body[i+2:i+6]), 16, 16)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", errBadEscape, err)
				}
				units = append(units, uint16(v))
				i += 6
				continue
			default:
				return nil, fmt.Errorf("%w: \\%c", errBadEscape, body[i+1])
			}
			i += 2
		case c < utf8.RuneSelf:
			units = append(units, uint16(c))
			i++
		default:
			r, size := decodeWTF8(body[i:])
			if size == 0 {
				return nil, fmt.Errorf("%w at byte %d", errInvalidByteSeq, i+1)
			}
			if r >= 0x10000 {
				hi, lo := utf16.EncodeRune(r)
				units = append(units, uint16(hi), uint16(lo))
			} else {
				units = append(units, uint16(r))
			}
			i += size
		}
	}
	return units, nil
}

// decodeWTF8 decodes one UTF-8 sequence, also accepting the three-byte
// encoding of a surrogate code point. size is 0 for invalid input.
func decodeWTF8(b []byte) (rune, int) {
	r, size := utf8.DecodeRune(b)
	if r != utf8.RuneError || size > 1 {
		return r, size
	}
	if len(b) >= 3 && b[0] == 0xED && b[1] >= 0xA0 && b[1] <= 0xBF && b[2]&0xC0 == 0x80 {
		return 0xD000 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
	}
	return 0, 0
}
