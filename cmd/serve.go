// MCP server command - exposes service documentation to LLM clients
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"svcdocs/internal/config"
	"svcdocs/scanner"
)

var serveDir string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve extracted documentation over MCP stdio",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveDir, "dir", "d", "", "service directory to scan (default from config)")
}

// Input types for tools
type categoryInput struct {
	Category string `json:"category" jsonschema:"Category label, e.g. Domain Management"`
}

type findInput struct {
	Name string `json:"name" jsonschema:"Function name or name fragment (case-insensitive)"`
}

type emptyInput struct{}

func runServe(cmd *cobra.Command, args []string) error {
	dir := firstNonEmpty(serveDir, config.AppConfig.ServiceDir)

	// Each tool call rescans so results track the working tree, rule
	// file included.
	scan := func() (*scanner.Report, error) {
		rules, err := categoryRules("")
		if err != nil {
			return nil, err
		}
		return scanner.Scan(dir, scanner.Options{
			Rules:    rules,
			Excludes: config.AppConfig.Exclude,
		})
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "svcdocs",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List service documentation categories with file and function counts. Use this to see how the service layer is organized.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
		report, err := scan()
		if err != nil {
			return errorResult("Scan error: " + err.Error()), nil, nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%d categories, %d public functions\n\n", len(report.Categories), report.TotalFunctions())
		for _, label := range report.SortedCategories() {
			fmt.Fprintf(&sb, "%s: %d files, %d functions\n",
				label, len(report.Categories[label]), report.CategoryFunctions(label))
		}
		return textResult(sb.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_category",
		Description: "Get every documented function in one category, grouped by file, with signatures and doc comments.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input categoryInput) (*mcp.CallToolResult, any, error) {
		report, err := scan()
		if err != nil {
			return errorResult("Scan error: " + err.Error()), nil, nil
		}

		files, ok := report.Categories[input.Category]
		if !ok {
			return errorResult("Unknown category '" + input.Category + "' (try list_categories)"), nil, nil
		}

		var sb strings.Builder
		for _, path := range scanner.SortedFiles(files) {
			fmt.Fprintf(&sb, "%s\n", path)
			for _, fn := range files[path] {
				writeFunction(&sb, fn)
			}
			sb.WriteString("\n")
		}
		return textResult(sb.String()), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_function",
		Description: "Find documented functions by name fragment (case-insensitive). Returns signature, documentation and location for each match.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input findInput) (*mcp.CallToolResult, any, error) {
		report, err := scan()
		if err != nil {
			return errorResult("Scan error: " + err.Error()), nil, nil
		}

		needle := strings.ToLower(input.Name)
		var sb strings.Builder
		matches := 0
		for _, label := range report.SortedCategories() {
			files := report.Categories[label]
			for _, path := range scanner.SortedFiles(files) {
				for _, fn := range files[path] {
					if !strings.Contains(strings.ToLower(fn.Name), needle) {
						continue
					}
					matches++
					fmt.Fprintf(&sb, "%s:%d [%s]\n", path, fn.LineNumber, label)
					writeFunction(&sb, fn)
				}
			}
		}
		if matches == 0 {
			return textResult("No functions match '" + input.Name + "'"), nil, nil
		}
		return textResult(fmt.Sprintf("%d matches:\n\n%s", matches, sb.String())), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Check svcdocs MCP server status. Returns version and the configured scan root.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
		return textResult(fmt.Sprintf(`svcdocs MCP server v%s
Status: connected
Service directory: %s

Available tools:
  list_categories - Category overview with counts
  get_category    - Full docs for one category
  find_function   - Search functions by name
  status          - This message`, version, dir)), nil, nil
	})

	// Run server on stdio
	return server.Run(context.Background(), &mcp.StdioTransport{})
}

func writeFunction(sb *strings.Builder, fn scanner.FunctionRecord) {
	fmt.Fprintf(sb, "  %s\n", fn.Signature)
	for _, line := range fn.Documentation {
		fmt.Fprintf(sb, "    %s\n", line)
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: true,
	}
}
