package filter

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

var errWriterState = errors.New("json writer: invalid state")

// Writer streams compact JSON tokens to an io.Writer.
//
// Errors are sticky: after the first failure every call is a no-op and the
// error is reported by Err and Flush. Property names are not deduplicated;
// writing the same name twice in one object emits it twice.
type Writer struct {
	out   *bufio.Writer
	buf   []byte
	stack []scope
	err   error
}

type scope struct {
	array bool
	count int
	// named is set between a property name and its value.
	named bool
}

// NewWriter returns a Writer streaming to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(w)}
}

// Err returns the first error encountered.
func (w *Writer) Err() error { return w.err }

// Fail records err unless an error was already recorded.
func (w *Writer) Fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Flush writes buffered output and returns the first error encountered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if len(w.stack) != 0 {
		w.err = fmt.Errorf("%w: %d unclosed containers", errWriterState, len(w.stack))
		return w.err
	}
	if err := w.out.Flush(); err != nil {
		w.err = err
	}
	return w.err
}

// StartObject opens a JSON object.
func (w *Writer) StartObject() {
	if !w.beforeValue() {
		return
	}
	w.raw('{')
	w.stack = append(w.stack, scope{})
}

// EndObject closes the innermost object.
func (w *Writer) EndObject() {
	w.end(false, '}')
}

// StartArray opens a JSON array.
func (w *Writer) StartArray() {
	if !w.beforeValue() {
		return
	}
	w.raw('[')
	w.stack = append(w.stack, scope{array: true})
}

// EndArray closes the innermost array.
func (w *Writer) EndArray() {
	w.end(true, ']')
}

// Name writes a property name in the innermost object.
func (w *Writer) Name(name string) {
	if w.err != nil {
		return
	}
	top := w.top()
	if top == nil || top.array || top.named {
		w.err = fmt.Errorf("%w: property name %q outside of an object", errWriterState, name)
		return
	}
	if top.count > 0 {
		w.raw(',')
	}
	top.count++
	top.named = true
	w.buf = appendString(w.buf[:0], name)
	w.buf = append(w.buf, ':')
	w.write(w.buf)
}

// String writes a string value.
func (w *Writer) String(s string) {
	if !w.beforeValue() {
		return
	}
	w.buf = appendString(w.buf[:0], s)
	w.write(w.buf)
}

// Int writes an integer value.
func (w *Writer) Int(v int64) {
	if !w.beforeValue() {
		return
	}
	w.write(strconv.AppendInt(w.buf[:0], v, 10))
}

// Uint writes an unsigned integer value.
func (w *Writer) Uint(v uint64) {
	if !w.beforeValue() {
		return
	}
	w.write(strconv.AppendUint(w.buf[:0], v, 10))
}

// Float writes a floating point value using the encoding/json format.
func (w *Writer) Float(v float64) {
	w.Value(v)
}

// Bool writes a boolean value.
func (w *Writer) Bool(v bool) {
	if !w.beforeValue() {
		return
	}
	w.write(strconv.AppendBool(w.buf[:0], v))
}

// Null writes the null literal.
func (w *Writer) Null() {
	if !w.beforeValue() {
		return
	}
	w.write([]byte("null"))
}

// Value writes v encoded with encoding/json.
func (w *Writer) Value(v any) {
	if w.err != nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("json writer: encode %T: %w", v, err)
		return
	}
	w.RawValue(b)
}

// RawValue writes b, which must be a single valid JSON value, verbatim.
func (w *Writer) RawValue(b []byte) {
	if !w.beforeValue() {
		return
	}
	w.write(b)
}

func (w *Writer) top() *scope {
	if len(w.stack) == 0 {
		return nil
	}
	return &w.stack[len(w.stack)-1]
}

// beforeValue emits the separator a value needs and reports whether writing
// may go on.
func (w *Writer) beforeValue() bool {
	if w.err != nil {
		return false
	}
	top := w.top()
	switch {
	case top == nil:
	case top.array:
		if top.count > 0 {
			w.raw(',')
		}
		top.count++
	case top.named:
		top.named = false
	default:
		w.err = fmt.Errorf("%w: value without a property name", errWriterState)
	}
	return w.err == nil
}

func (w *Writer) end(array bool, delim byte) {
	if w.err != nil {
		return
	}
	top := w.top()
	if top == nil || top.array != array || top.named {
		w.err = fmt.Errorf("%w: unbalanced %q", errWriterState, delim)
		return
	}
	w.stack = w.stack[:len(w.stack)-1]
	w.raw(delim)
}

func (w *Writer) raw(b byte) {
	if w.err != nil {
		return
	}
	if err := w.out.WriteByte(b); err != nil {
		w.err = err
	}
}

func (w *Writer) write(b []byte) {
	if w.err != nil {
		return
	}
	if _, err := w.out.Write(b); err != nil {
		w.err = err
	}
}

const hex = "0123456789abcdef"

// appendString appends s as a JSON string. Unlike encoding/json it leaves
// '<', '>' and '&' as they are.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if b >= 0x20 && b != '"' && b != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch b {
			case '"', '\\':
				dst = append(dst, '\\', b)
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hex[b>>4], hex[b&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, `\ufffd`...)
			i += size
			start = i
			continue
		}
		// U+2028 and U+2029 break JavaScript string literals.
		if r == '\u2028' || r == '\u2029' {
			dst = append(dst, s[start:i]...)
			dst = append(dst, '\\', 'u', '2', '0', '2', hex[r&0xF])
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
