package dataset

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// encodingAliases maps code page names that the WHATWG index does not know
// to a label it does.
var encodingAliases = map[string]string{
	"cp949":   "euc-kr",
	"ms949":   "euc-kr",
	"uhc":     "euc-kr",
	"utf8":    "utf-8",
	"cp1252":  "windows-1252",
	"latin1":  "iso-8859-1",
	"latin-1": "iso-8859-1",
}

// ResolveEncoding returns the encoding registered under name.
// Names are matched case-insensitively against the WHATWG labels first and
// the IANA registry second.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := encodingAliases[label]; ok {
		label = alias
	}

	if enc, err := htmlindex.Get(label); err == nil {
		return enc, nil
	}

	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}

// NewDecodingReader wraps r so that reads yield UTF-8 text decoded from enc.
// A leading byte order mark switches to the matching Unicode decoding and
// is removed.
func NewDecodingReader(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))
}
