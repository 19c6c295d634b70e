package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/sortdemo/internal/element"
	"github.com/dusk-indust/sortdemo/internal/validate"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestWriteArgumentsAndValues(t *testing.T) {
	cfg, err := validate.Validate([]string{"a=Q", "o=AZ", "v=5,3,8,1"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteArguments(&buf, cfg))
	require.NoError(t, WriteValues(&buf, element.IntValues(1, 3, 5, 8)))

	assert.Equal(t, "All arguments are valid:\na=Q\no=AZ\nv=5,3,8,1\n1 3 5 8\n", buf.String())
}

func TestWriteJSON_Integers(t *testing.T) {
	cfg, err := validate.Validate([]string{"a=b", "o=za", "s=300", "v=2,1"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, cfg, element.IntValues(2, 1)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "bubble", got["algorithm"])
	assert.Equal(t, "ZA", got["order"])
	assert.Equal(t, "integer", got["kind"])
	assert.Equal(t, false, got["random"])
	assert.Equal(t, float64(300), got["speed"])
	assert.Equal(t, []any{float64(2), float64(1)}, got["values"])
	assert.Equal(t, []any{"a=b", "o=za", "s=300", "v=2,1"}, got["arguments"])
}

func TestWriteJSON_Characters(t *testing.T) {
	cfg, err := validate.Validate([]string{"v=b,a"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, cfg, element.CharValues('a', 'b')))

	var got RunExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "character", got.Kind)
	assert.Equal(t, []any{"a", "b"}, got.Values)
	assert.Nil(t, got.Speed)
}

func TestWriteDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	WriteDiagnostics(&buf, validate.Errors{
		&validate.UnrecognizedKeyError{Key: "x"},
		&validate.MalformedTokenError{Token: "bad"},
	})
	assert.Equal(t, "error: unrecognized argument: x\nerror: invalid argument: bad\n", buf.String())

	buf.Reset()
	WriteDiagnostics(&buf, errors.Join(errors.New("one"), errors.New("two")))
	assert.Equal(t, "error: one\nerror: two\n", buf.String())

	buf.Reset()
	WriteDiagnostics(&buf, nil)
	assert.Empty(t, buf.String())
}
