// Package mcptool exposes the simulation engine as an MCP tool over a stdio
// JSON-RPC loop, for agent hosts that prefer tool calls to HTTP.
package mcptool

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"revcast/internal/config"
	"revcast/internal/forecast"
	"revcast/internal/httpapi"
)

// JSONRPCRequest represents a standard MCP/JSON-RPC request.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse represents a standard MCP/JSON-RPC response.
type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// Server holds the state for the MCP tool server.
type Server struct {
	cfg    *config.AppConfig
	engine *forecast.Engine
	in     io.Reader
	out    io.Writer
}

// NewServer creates an MCP tool server reading stdin and writing stdout.
func NewServer(cfg *config.AppConfig) *Server {
	return &Server{
		cfg:    cfg,
		engine: forecast.NewEngine(cfg.HistogramBuckets),
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// Serve runs the JSON-RPC loop until EOF.
func (s *Server) Serve() error {
	reader := bufio.NewReader(s.in)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal request")
			continue
		}

		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req JSONRPCRequest) {
	var result interface{}
	var errRes interface{}

	switch req.Method {
	case "initialize":
		result = map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities":    map[string]interface{}{},
			"serverInfo": map[string]interface{}{
				"name":    "revcast",
				"version": forecast.APIVersion,
			},
		}
	case "tools/list":
		result = s.listTools()
	case "tools/call":
		result, errRes = s.callTool(req.Params)
	default:
		errRes = map[string]interface{}{
			"code":    -32601,
			"message": fmt.Sprintf("Method %s not found", req.Method),
		}
	}

	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
		Error:   errRes,
	}

	out, _ := json.Marshal(resp)
	fmt.Fprintf(s.out, "%s\n", out)
}

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	if call.Name != "run_revenue_simulation" {
		return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
	}

	data, err := s.runSimulation(call.Arguments)
	if err != nil {
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": formatResult(data),
			},
		},
	}, nil
}

// runSimulation shares the HTTP layer's request schema and validator, so the
// tool path and the HTTP path cannot drift apart.
func (s *Server) runSimulation(arguments json.RawMessage) (*forecast.Result, error) {
	var req httpapi.SimulationRequest
	if err := json.Unmarshal(arguments, &req); err != nil {
		return nil, fmt.Errorf("invalid tool arguments: %w", err)
	}

	resolved, verr := req.Validate(s.cfg)
	if verr != nil {
		return nil, verr
	}

	return s.engine.Run(resolved.Opportunities, forecast.Params{
		NumSimulations:  resolved.NumSimulations,
		TimeHorizonDays: resolved.TimeHorizonDays,
		RevenueTargets:  resolved.RevenueTargets,
		Today:           time.Now(),
	}), nil
}

func formatResult(data interface{}) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}
