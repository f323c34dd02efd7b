package splash

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var testMCPImpl = &mcp.Implementation{Name: "splash-test", Version: "0.1.0"}

func mcpSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	r := testResolver(t)
	srv := mcp.NewServer(testMCPImpl, nil)
	r.RegisterMCP(srv)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	client := mcp.NewClient(testMCPImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func mcpCall(t *testing.T, session *mcp.ClientSession, name string, args any) (string, bool) {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if len(result.Content) == 0 {
		t.Fatalf("CallTool(%s): empty content", name)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent", name)
	}
	return tc.Text, result.IsError
}

// --- splash_resolve ---

func TestMCP_Resolve(t *testing.T) {
	session := mcpSession(t)

	text, isErr := mcpCall(t, session, "splash_resolve", map[string]any{"ui": "html-ui"})
	if isErr {
		t.Fatalf("tool error: %s", text)
	}
	var resp struct {
		Configured bool `json:"configured"`
		View       View `json:"view"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Configured {
		t.Fatal("expected configured=true")
	}
	if resp.View.HTML != "<title>Welcome</title><h1>Hello</h1><p>world</p>" {
		t.Errorf("html = %q", resp.View.HTML)
	}
	if resp.View.Width != "400px" || resp.View.Height != "300px" || !resp.View.Autohide {
		t.Errorf("view = %+v", resp.View)
	}
}

func TestMCP_Resolve_Absent(t *testing.T) {
	session := mcpSession(t)

	text, isErr := mcpCall(t, session, "splash_resolve", map[string]any{"ui": "plain-ui"})
	if isErr {
		t.Fatalf("tool error: %s", text)
	}
	if text != `{"configured":false}` {
		t.Fatalf("unexpected response: %s", text)
	}
}

func TestMCP_Resolve_Missing(t *testing.T) {
	session := mcpSession(t)

	text, isErr := mcpCall(t, session, "splash_resolve", map[string]any{"ui": "broken-ui"})
	if !isErr {
		t.Fatalf("expected tool error, got %s", text)
	}
	if !strings.Contains(text, "missing.html") {
		t.Fatalf("error should name the file: %s", text)
	}
}

// --- splash_contents ---

func TestMCP_Contents(t *testing.T) {
	session := mcpSession(t)

	text, isErr := mcpCall(t, session, "splash_contents", map[string]any{"ui": "plain-ui", "file": "logo.jpg"})
	if isErr {
		t.Fatalf("tool error: %s", text)
	}
	var resp struct {
		Contents []string `json:"contents"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Contents) != 1 || resp.Contents[0] != `<img src="logo.jpg"/>` {
		t.Fatalf("contents = %v", resp.Contents)
	}

	text, isErr = mcpCall(t, session, "splash_contents", map[string]any{"ui": "ghost", "file": "logo.jpg"})
	if !isErr || !strings.Contains(text, "unknown ui") {
		t.Fatalf("expected unknown ui error, got %s", text)
	}
}

// --- splash_classify ---

func TestMCP_Classify(t *testing.T) {
	session := mcpSession(t)

	text, isErr := mcpCall(t, session, "splash_classify", map[string]any{"file": "splash.htm"})
	if isErr {
		t.Fatalf("tool error: %s", text)
	}
	var src Source
	if err := json.Unmarshal([]byte(text), &src); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if src.Kind != KindHTML || src.Path != "splash.htm" {
		t.Fatalf("source = %+v", src)
	}

	text, isErr = mcpCall(t, session, "splash_classify", map[string]any{"file": "logo.svg"})
	if !isErr || !strings.Contains(text, "logo.svg") {
		t.Fatalf("expected unsupported error, got %s", text)
	}
}
