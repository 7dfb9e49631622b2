package uri

import "strings"

// percentDecoder decodes one percent-encoded byte, fed one hex digit at a
// time. The high nibble is shifted in first. It may be reset and reused.
type percentDecoder struct {
	decoded    byte
	digitsLeft int
}

func newPercentDecoder() percentDecoder {
	return percentDecoder{digitsLeft: 2}
}

func (d *percentDecoder) reset() {
	d.decoded = 0
	d.digitsLeft = 2
}

// next shifts in one hex digit. It returns the decoded byte and done=true
// once both digits have been consumed. A non-hex input byte is an error and
// resets the decoder.
func (d *percentDecoder) next(b byte) (decoded byte, done bool, err error) {
	var nibble byte
	switch {
	case b >= '0' && b <= '9':
		nibble = b - '0'
	case b >= 'A' && b <= 'F':
		nibble = b - 'A' + 10
	case b >= 'a' && b <= 'f':
		nibble = b - 'a' + 10
	default:
		d.reset()
		return 0, false, ErrIllegalPercentEncoding
	}
	d.decoded = d.decoded<<4 | nibble
	d.digitsLeft--
	if d.digitsLeft == 0 {
		decoded = d.decoded
		d.reset()
		return decoded, true, nil
	}
	return 0, false, nil
}

// decodeElement decodes a URI component: a '%' begins a two-digit
// percent-escape, and every other byte must belong to the allowed alphabet.
// The context names the component for error reporting.
func decodeElement(element string, allowed CharacterSet, context string) ([]byte, error) {
	decoded := make([]byte, 0, len(element))
	pec := newPercentDecoder()
	decodingPec := false
	for i := 0; i < len(element); i++ {
		b := element[i]
		if decodingPec {
			c, done, err := pec.next(b)
			if err != nil {
				return nil, err
			}
			if done {
				decoded = append(decoded, c)
				decodingPec = false
			}
			continue
		}
		switch {
		case b == '%':
			decodingPec = true
		case allowed.Contains(b):
			decoded = append(decoded, b)
		default:
			return nil, illegalCharacter(context)
		}
	}
	if decodingPec {
		return nil, ErrIllegalPercentEncoding
	}
	return decoded, nil
}

const upperHexDigits = "0123456789ABCDEF"

// encodeElement renders a decoded URI component, percent-encoding every byte
// outside the allowed alphabet. Hex digits are upper case.
func encodeElement(element []byte, allowed CharacterSet) string {
	var encoded strings.Builder
	encoded.Grow(len(element))
	for _, b := range element {
		if allowed.Contains(b) {
			encoded.WriteByte(b)
		} else {
			encoded.WriteByte('%')
			encoded.WriteByte(upperHexDigits[b>>4])
			encoded.WriteByte(upperHexDigits[b&0x0F])
		}
	}
	return encoded.String()
}
