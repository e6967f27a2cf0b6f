package tool

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// ProtocolVersion is reported by the initialize handshake.
const ProtocolVersion = "2024-11-05"

// JSON-RPC error codes.
const (
	rpcParseError     = -32700
	rpcInvalidRequest = -32600
	rpcMethodNotFound = -32601
	rpcInvalidParams  = -32602
)

// ServerInfo identifies the server in the initialize handshake.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ServeStdio reads line-delimited JSON-RPC 2.0 requests from r and writes
// responses to w until r is exhausted or ctx is canceled. It understands
// initialize, ping, tools/list and tools/call; notifications get no reply.
func ServeStdio(ctx context.Context, h *Handler, info ServerInfo, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	enc := json.NewEncoder(w)
	write := func(resp rpcResponse) error {
		return enc.Encode(resp)
	}

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req rpcRequest
		if err := json.Unmarshal(line, &req); err != nil {
			if err := write(errorReply(json.RawMessage("null"), rpcParseError, "parse error")); err != nil {
				return err
			}
			continue
		}

		resp, ok := handleRPC(ctx, h, info, req)
		if !ok {
			continue
		}
		if err := write(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}

	return scanner.Err()
}

// handleRPC answers one request. ok is false for notifications.
func handleRPC(ctx context.Context, h *Handler, info ServerInfo, req rpcRequest) (rpcResponse, bool) {
	if len(req.ID) == 0 {
		return rpcResponse{}, false
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		return errorReply(req.ID, rpcInvalidRequest, "invalid request"), true
	}

	switch req.Method {
	case "initialize":
		return reply(req.ID, map[string]any{
			"protocolVersion": ProtocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo":      info,
		}), true
	case "ping":
		return reply(req.ID, map[string]any{}), true
	case "tools/list":
		return reply(req.ID, map[string]any{"tools": h.Definitions()}), true
	case "tools/call":
		var call Request
		if err := json.Unmarshal(req.Params, &call); err != nil || call.Name == "" {
			return errorReply(req.ID, rpcInvalidParams, "tools/call requires a tool name"), true
		}
		return reply(req.ID, h.Call(ctx, call)), true
	default:
		return errorReply(req.ID, rpcMethodNotFound, "method not found: "+req.Method), true
	}
}

func reply(id json.RawMessage, result any) rpcResponse {
	return rpcResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func errorReply(id json.RawMessage, code int, msg string) rpcResponse {
	return rpcResponse{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: msg}}
}
