package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_EmptyMemberObjectBecomesNull(t *testing.T) {
	out, err := Encode(map[string]any{"a": map[string]any{}, "b": "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":null,"b":"x"}`, string(out))
}

func TestEncode_EmptyObjectsOutsideMembersAreKept(t *testing.T) {
	out, err := Encode(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))

	out, err = Encode([]any{map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, `[{}]`, string(out))
}

func TestEncode_KeepsStructFieldOrder(t *testing.T) {
	type item struct {
		ID    int            `json:"id"`
		Title string         `json:"title"`
		Meta  map[string]int `json:"meta"`
	}
	out, err := Encode(item{ID: 3, Title: "t", Meta: map[string]int{}})
	require.NoError(t, err)
	assert.Equal(t, `{"id":3,"title":"t","meta":null}`, string(out))
}

func TestEncode_PreservesNumbers(t *testing.T) {
	out, err := Encode(map[string]any{"big": int64(1700000000123), "f": 1.5})
	require.NoError(t, err)
	assert.Equal(t, `{"big":1700000000123,"f":1.5}`, string(out))
}

func TestRoundTrip_DocumentUnchanged(t *testing.T) {
	docs := []string{
		`{"title":"hello","content":"world"}`,
		`{"error":{"type":"failed","messages":["a","b"]}}`,
		`{"nested":{"deep":{"list":[1,2,{"x":null}],"ok":true}},"n":null}`,
		`{"html":"<b>"}`,
	}
	for _, doc := range docs {
		m, err := DecodeObject([]byte(doc))
		require.NoError(t, err, doc)
		out, err := Encode(m)
		require.NoError(t, err, doc)
		assert.JSONEq(t, doc, string(out), doc)

		again, err := DecodeObject(out)
		require.NoError(t, err)
		assert.Equal(t, m, again)
	}
}

func TestDecodeObject_Errors(t *testing.T) {
	_, err := DecodeObject([]byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = DecodeObject([]byte(`not-json`))
	assert.Error(t, err)

	_, err = DecodeObject([]byte(`{"a":1} {"b":2}`))
	assert.Error(t, err)
}

func TestDecodeObject_NumbersAsJSONNumber(t *testing.T) {
	m, err := DecodeObject([]byte(`{"id":1700000000123}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("1700000000123"), m["id"])
}

func TestCanonicalize_RejectsTrailingData(t *testing.T) {
	_, err := Canonicalize([]byte(`{} []`))
	assert.Error(t, err)
}
