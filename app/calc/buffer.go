// Package calc holds the calculator session: the input buffer, keypad
// commands and the history of computations.
package calc

import "unicode/utf8"

// Buffer is the accumulated expression text. It accepts any text; validity
// is only checked when the expression is evaluated.
type Buffer struct {
	text string
}

// Append concatenates token onto the buffer.
func (b *Buffer) Append(token string) {
	b.text += token
}

// DeleteLast removes the final character, if any.
func (b *Buffer) DeleteLast() {
	if b.text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.text)
	b.text = b.text[:len(b.text)-size]
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.text = ""
}

// Set replaces the buffer contents.
func (b *Buffer) Set(text string) {
	b.text = text
}

// Text returns the current contents.
func (b *Buffer) Text() string {
	return b.text
}

// Len returns the length of the contents in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}
