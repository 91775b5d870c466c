// Package jsonx encodes and decodes the JSON bodies exchanged by the API.
//
// Encoded output is compact, keeps member order, and writes object members
// whose value is an empty object as null. Empty objects inside arrays and an
// empty root object are left untouched.
package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject is returned by DecodeObject when the input is valid JSON but not an object.
var ErrNotObject = errors.New("json value is not an object")

// Encode marshals v and canonicalizes empty member objects to null.
func Encode(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Canonicalize(raw)
}

// Canonicalize rewrites an already encoded JSON document.
func Canonicalize(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var buf bytes.Buffer
	if err := writeValue(dec, &buf, false); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("jsonx: trailing data after document")
	}
	return buf.Bytes(), nil
}

// DecodeObject parses a JSON object. Numbers are kept as json.Number.
func DecodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("jsonx: trailing data after document")
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return m, nil
}

func writeValue(dec *json.Decoder, buf *bytes.Buffer, member bool) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return writeObject(dec, buf, member)
		case '[':
			return writeArray(dec, buf)
		default:
			return fmt.Errorf("jsonx: unexpected delimiter %q", t)
		}
	case string:
		return writeScalar(buf, t)
	case json.Number:
		buf.WriteString(t.String())
	case bool:
		return writeScalar(buf, t)
	case nil:
		buf.WriteString("null")
	}
	return nil
}

func writeObject(dec *json.Decoder, buf *bytes.Buffer, member bool) error {
	if !dec.More() {
		if _, err := dec.Token(); err != nil {
			return err
		}
		if member {
			buf.WriteString("null")
		} else {
			buf.WriteString("{}")
		}
		return nil
	}
	buf.WriteByte('{')
	for i := 0; dec.More(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := dec.Token()
		if err != nil {
			return err
		}
		if err := writeScalar(buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeValue(dec, buf, true); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func writeArray(dec *json.Decoder, buf *bytes.Buffer) error {
	buf.WriteByte('[')
	for i := 0; dec.More(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(dec, buf, false); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	buf.WriteByte(']')
	return nil
}

func writeScalar(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
