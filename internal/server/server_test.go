package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/brand-tokens/pkg/document"
	"github.com/kataras/brand-tokens/pkg/tool"
)

func newTestServer(t *testing.T) (*httptest.Server, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	decoder := document.DecoderFunc(func(_ context.Context, path string) (string, error) {
		if path != "brand.pdf" {
			return "", document.ErrNotFound
		}
		return "Brand: Acme\n#ff0000 #00ff00 Roboto", nil
	})

	h := tool.NewHandler(decoder, tool.WithObserver(metrics))
	ts := httptest.NewServer(New(h, WithGatherer(reg)).Handler())
	t.Cleanup(ts.Close)
	return ts, reg
}

func postCall(t *testing.T, ts *httptest.Server, body string) (int, tool.Response) {
	t.Helper()

	resp, err := http.Post(ts.URL+"/tools/call", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out tool.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListTools(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/tools")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Tools []tool.Definition `json:"tools"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Tools, 2)
	assert.Equal(t, tool.ExtractPDFBranding, out.Tools[0].Name)
	assert.Equal(t, tool.GenerateDesignTokens, out.Tools[1].Name)
}

func TestCallExtract(t *testing.T) {
	ts, reg := newTestServer(t)

	status, out := postCall(t, ts, `{"name":"extract_pdf_branding","arguments":{"pdfPath":"brand.pdf"}}`)
	assert.Equal(t, http.StatusOK, status)
	require.False(t, out.IsError, out.Text())
	assert.Contains(t, out.Text(), `"hex": "#ff0000"`)
	assert.Contains(t, out.Text(), `"brandName": "Acme"`)

	calls, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, calls)
}

func TestCallToolErrorsInBand(t *testing.T) {
	ts, _ := newTestServer(t)

	status, out := postCall(t, ts, `{"name":"extract_pdf_branding","arguments":{"pdfPath":"missing.pdf"}}`)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, out.IsError)
	assert.True(t, strings.HasPrefix(out.Text(), "Error: "))

	status, out = postCall(t, ts, `{"name":"nope"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, out.IsError)
}

func TestCallBadBody(t *testing.T) {
	ts, _ := newTestServer(t)

	status, out := postCall(t, ts, `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.True(t, out.IsError)
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	postCall(t, ts, `{"name":"generate_design_tokens","arguments":{"brandingData":{"colors":[]}}}`)
	postCall(t, ts, `{"name":"generate_design_tokens","arguments":{}}`)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `brand_tokens_tool_calls_total{code="ok",tool="generate_design_tokens"} 1`)
	assert.Contains(t, string(body), `brand_tokens_tool_calls_total{code="invalid_params",tool="generate_design_tokens"} 1`)
}

func TestMetricsRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewMetrics(reg)
	second := NewMetrics(reg)

	first.ObserveCall(tool.ExtractPDFBranding, tool.CodeOK, 0)
	second.ObserveCall(tool.ExtractPDFBranding, tool.CodeOK, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(first.calls.WithLabelValues(tool.ExtractPDFBranding, "ok")))
}

func TestMetricsUnknownToolNamesShareOneSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := tool.NewHandler(document.DecoderFunc(func(context.Context, string) (string, error) {
		return "", nil
	}), tool.WithObserver(NewMetrics(reg)))

	for i := 0; i < 50; i++ {
		resp := h.Call(context.Background(), tool.Request{Name: fmt.Sprintf("junk-%d", i)})
		require.True(t, resp.IsError)
	}
	h.Call(context.Background(), tool.Request{Name: ""})

	count, err := testutil.GatherAndCount(reg, "brand_tokens_tool_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	metrics := NewMetrics(reg)
	assert.Equal(t, 51.0, testutil.ToFloat64(metrics.calls.WithLabelValues("unknown", string(tool.CodeUnknownTool))))
}
