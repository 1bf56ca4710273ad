package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders sequence values as text.
//
// The zero value renders plain decimal integers. A Formatter built with a
// locale renders integers with that locale's digit grouping.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a Formatter for locale. An empty locale renders plain
// integers.
func NewFormatter(locale string) (Formatter, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return Formatter{}, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return Formatter{printer: message.NewPrinter(tag)}, nil
}

// Int renders a single value.
func (f Formatter) Int(v int) string {
	if f.printer == nil {
		return strconv.Itoa(v)
	}
	return f.printer.Sprintf("%d", v)
}

// Sequence renders values as a bracketed list, e.g. "[1, 2, 1]".
func (f Formatter) Sequence(values []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Int(v))
	}
	b.WriteByte(']')
	return b.String()
}

// Format renders values with the zero Formatter.
func Format(values []int) string {
	return Formatter{}.Sequence(values)
}
