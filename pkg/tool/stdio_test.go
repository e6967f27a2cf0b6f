package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeStdio(t *testing.T) {
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"extract_pdf_branding","arguments":{}}}`,
		`{"jsonrpc":"2.0","id":"four","method":"tools/call","params":{"name":"extract_pdf_branding","arguments":{"pdfPath":"a.pdf"}}}`,
		`not json`,
		`{"jsonrpc":"2.0","id":5,"method":"resources/list"}`,
		`{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{}}`,
	}, "\n")

	h := NewHandler(&fakeDecoder{text: "#abcdef"})
	var out bytes.Buffer
	err := ServeStdio(context.Background(), h, ServerInfo{Name: "brand-tokens", Version: "test"}, strings.NewReader(in), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)

	type resp struct {
		ID     json.RawMessage `json:"id"`
		Result json.RawMessage `json:"result"`
		Error  *rpcError       `json:"error"`
	}
	parse := func(i int) resp {
		var r resp
		require.NoError(t, json.Unmarshal([]byte(lines[i]), &r), lines[i])
		return r
	}

	r := parse(0)
	assert.Equal(t, "1", string(r.ID))
	assert.Contains(t, string(r.Result), `"protocolVersion":"`+ProtocolVersion+`"`)
	assert.Contains(t, string(r.Result), `"name":"brand-tokens"`)

	r = parse(1)
	var list struct {
		Tools []Definition `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(r.Result, &list))
	require.Len(t, list.Tools, 2)
	assert.Equal(t, ExtractPDFBranding, list.Tools[0].Name)

	r = parse(2)
	var call Response
	require.NoError(t, json.Unmarshal(r.Result, &call))
	assert.True(t, call.IsError)

	r = parse(3)
	assert.Equal(t, `"four"`, string(r.ID))
	call = Response{}
	require.NoError(t, json.Unmarshal(r.Result, &call))
	assert.False(t, call.IsError)
	assert.Contains(t, call.Text(), `"hex": "#abcdef"`)

	r = parse(4)
	assert.Equal(t, "null", string(r.ID))
	require.NotNil(t, r.Error)
	assert.Equal(t, rpcParseError, r.Error.Code)

	r = parse(5)
	require.NotNil(t, r.Error)
	assert.Equal(t, rpcMethodNotFound, r.Error.Code)

	r = parse(6)
	require.NotNil(t, r.Error)
	assert.Equal(t, rpcInvalidParams, r.Error.Code)
}

func TestServeStdioCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := ServeStdio(ctx, NewHandler(&fakeDecoder{}), ServerInfo{}, strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
