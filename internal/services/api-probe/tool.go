package api_probe

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const ToolName = "check_api_status"

type CheckAPIStatusInput struct {
	URL string `json:"url" jsonschema:"URL of the API endpoint to probe with an HTTP GET"`
}

var checkAPIStatusTool = &mcp.Tool{
	Name:        ToolName,
	Title:       "Check API status",
	Description: "Checks the status of an API endpoint by performing an HTTP probe.",
	Annotations: &mcp.ToolAnnotations{
		Title:        "Check API status",
		ReadOnlyHint: true,
	},
}

// RegisterTools exposes h as the check_api_status tool. The tool result is a
// single text block holding the JSON probe result.
func RegisterTools(server *mcp.Server, h *Handler) {
	mcp.AddTool(server, checkAPIStatusTool,
		func(ctx context.Context, _ *mcp.CallToolRequest, in CheckAPIStatusInput) (*mcp.CallToolResult, any, error) {
			text, err := h.CheckAPIStatus(ctx, in.URL)
			if err != nil {
				return nil, nil, err
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: text}},
			}, nil, nil
		})
}

func NewServer(name, version string, h *Handler) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)
	RegisterTools(server, h)
	return server
}
