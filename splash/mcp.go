// CLAUDE:SUMMARY Registers splash_resolve, splash_contents and splash_classify MCP tools.
package splash

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/splashscreen/kit"
)

// RegisterMCP registers splash tools on an MCP server.
func (r *Resolver) RegisterMCP(srv *mcp.Server) {
	r.registerResolveTool(srv)
	r.registerContentsTool(srv)
	r.registerClassifyTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// --- resolve ---

type resolveReq struct {
	UI string `json:"ui"`
}

type resolveResp struct {
	Configured bool  `json:"configured"`
	View       *View `json:"view,omitempty"`
}

func (r *Resolver) registerResolveTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "splash_resolve",
		Description: "Resolve the splash screen of a registered UI into rendered HTML contents and display parameters.",
		InputSchema: inputSchema(map[string]any{
			"ui": map[string]any{"type": "string", "description": "Registered UI name"},
		}, []string{"ui"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		q := req.(*resolveReq)
		cfg, ok, err := r.Resolve(ctx, q.UI)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &resolveResp{Configured: false}, nil
		}
		view, err := r.renderer.View(cfg)
		if err != nil {
			return nil, err
		}
		return &resolveResp{Configured: true, View: view}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var q resolveReq
		if err := json.Unmarshal(req.Params.Arguments, &q); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &q}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode, kit.Logging(r.logger, tool.Name))
}

// --- contents ---

type contentsReq struct {
	UI   string `json:"ui"`
	File string `json:"file"`
}

func (r *Resolver) registerContentsTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "splash_contents",
		Description: "Render the splash contents a resource file would produce for a registered UI.",
		InputSchema: inputSchema(map[string]any{
			"ui":   map[string]any{"type": "string", "description": "Registered UI name"},
			"file": map[string]any{"type": "string", "description": "Resource file name (.html, .htm, .png, .jpg, .jpeg)"},
		}, []string{"ui", "file"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		q := req.(*contentsReq)
		nodes, err := r.Contents(q.UI, q.File)
		if err != nil {
			return nil, err
		}
		frags, err := r.renderer.Fragments(nodes)
		if err != nil {
			return nil, err
		}
		return map[string]any{"contents": frags}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var q contentsReq
		if err := json.Unmarshal(req.Params.Arguments, &q); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &q}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode, kit.Logging(r.logger, tool.Name))
}

// --- classify ---

type classifyReq struct {
	File string `json:"file"`
}

func (r *Resolver) registerClassifyTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "splash_classify",
		Description: "Classify a splash resource file name as html or image from its extension.",
		InputSchema: inputSchema(map[string]any{
			"file": map[string]any{"type": "string", "description": "Resource file name"},
		}, []string{"file"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		q := req.(*classifyReq)
		return Classify(q.File)
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var q classifyReq
		if err := json.Unmarshal(req.Params.Arguments, &q); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &q}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode, kit.Logging(r.logger, tool.Name))
}
