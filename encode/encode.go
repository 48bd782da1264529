// Package encode converts between the text used by the rest of the program
// and the bytes sent over the wire. UTF-8 is used by default. Networks which
// still speak a legacy single-byte charset can be served by a Codec created
// with Lookup.
package encode

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// ErrUnknownCharset is returned by Lookup for names it doesn't recognize.
var ErrUnknownCharset = errors.New("unknown charset")

// fallbackCharmap is used to decode bytes which are not valid UTF-8. Every
// byte maps to exactly one rune in ISO-8859-1 so decoding never fails and
// never loses information.
var fallbackCharmap = charmap.ISO8859_1

// UTF8 is the default codec.
var UTF8 = Codec{name: "utf-8"}

// Codec converts text to bytes and back using a single charset. The zero
// value behaves like UTF8.
type Codec struct {
	name    string
	charmap *charmap.Charmap
}

var charmaps = map[string]*charmap.Charmap{
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-2":   charmap.ISO8859_2,
	"latin2":       charmap.ISO8859_2,
	"iso-8859-15":  charmap.ISO8859_15,
	"latin9":       charmap.ISO8859_15,
	"windows-1250": charmap.Windows1250,
	"cp1250":       charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"cp1251":       charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"koi8-r":       charmap.KOI8R,
}

// Lookup returns a codec for the named charset. Names are case insensitive.
func Lookup(name string) (Codec, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "", "utf-8", "utf8":
		return UTF8, nil
	}
	cm, ok := charmaps[normalized]
	if !ok {
		return Codec{}, errors.Wrapf(ErrUnknownCharset, "charset '%s'", name)
	}
	return Codec{name: normalized, charmap: cm}, nil
}

// Name returns the name of the charset.
func (c Codec) Name() string {
	if c.name == "" {
		return UTF8.name
	}
	return c.name
}

// ToBytes converts s to the bytes which should be sent over the wire. Bytes
// which don't form valid UTF-8 are passed through untouched so that a string
// holding raw bytes is not mangled. Runes which the charmap can't represent
// are replaced with the charmap's replacement byte.
func (c Codec) ToBytes(s string) []byte {
	if c.charmap == nil {
		return []byte(s)
	}
	rv := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			rv = append(rv, s[i])
			i++
			continue
		}
		b, _ := c.charmap.EncodeRune(r)
		rv = append(rv, b)
		i += size
	}
	return rv
}

// ToText converts bytes received from the wire to text. Valid UTF-8 is always
// accepted as such, as most clients send UTF-8 regardless of what the network
// advertises. Anything else is decoded using the codec's charmap or
// ISO-8859-1 for UTF8.
func (c Codec) ToText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	cm := c.charmap
	if cm == nil {
		cm = fallbackCharmap
	}
	return decodeCharmap(b, cm)
}

func decodeCharmap(b []byte, cm *charmap.Charmap) string {
	builder := strings.Builder{}
	builder.Grow(len(b))
	for _, v := range b {
		builder.WriteRune(cm.DecodeByte(v))
	}
	return builder.String()
}

// ToBytes converts s using UTF8.
func ToBytes(s string) []byte {
	return UTF8.ToBytes(s)
}

// ToText converts b using UTF8.
func ToText(b []byte) string {
	return UTF8.ToText(b)
}
