package token

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSegment(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"empty", []byte{}, ""},
		{"no padding", []byte("f"), "Zg"},
		{"url alphabet", []byte{0xfb, 0xff, 0xbf}, "-_-_"},
		{"header", []byte(`{"typ":"JWT","alg":"wow"}`), "eyJ0eXAiOiJKV1QiLCJhbGciOiJ3b3cifQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeSegment(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "=")
			assert.NotContains(t, got, "+")
			assert.NotContains(t, got, "/")

			back, err := DecodeSegment(got)
			require.NoError(t, err)
			assert.Equal(t, tt.input, back)
		})
	}
}

func TestDecodeSegment(t *testing.T) {
	t.Run("tolerates padding", func(t *testing.T) {
		b, err := DecodeSegment("Zg==")
		require.NoError(t, err)
		assert.Equal(t, []byte("f"), b)
	})

	for name, input := range map[string]string{
		"standard alphabet":  "+/+/",
		"line break":         "Zm9v\nYmFy",
		"invalid characters": "bad token hash",
		"trailing bits":      "Zh",
		"dangling character": "Zm9vY",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSegment(input)
			assert.ErrorIs(t, err, ErrSegmentEncoding)
		})
	}
}

func TestParseObject(t *testing.T) {
	obj, err := parseObject(stdJSON{}, []byte(`{"a":{"b":[1,"x"]}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"a": map[string]interface{}{"b": []interface{}{float64(1), "x"}},
	}, obj)

	for _, raw := range []string{``, `null`, `[]`, `"s"`, `{"a":`, `{}x`} {
		_, err := parseObject(stdJSON{}, []byte(raw))
		assert.ErrorIs(t, err, ErrSegmentJSON, raw)
	}
}

func TestSerializeObject(t *testing.T) {
	raw, members, err := serializeObject(stdJSON{}, map[string]interface{}{"a": 1, "b": "2"})
	require.NoError(t, err)
	assert.Equal(t, 2, members)
	assert.JSONEq(t, `{"a":1,"b":"2"}`, string(raw))

	_, members, err = serializeObject(stdJSON{}, json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Zero(t, members)

	_, _, err = serializeObject(stdJSON{}, []int{1})
	assert.ErrorIs(t, err, ErrSegmentJSON)
}
