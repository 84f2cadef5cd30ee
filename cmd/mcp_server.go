package cmd

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/ariatest/dom"
	"github.com/mj1618/ariatest/query"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the loaded documents and query engine.
type mcpServer struct {
	mu     sync.Mutex
	docs   map[string]dom.Node
	engine *query.Engine
	mcp    *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport    string
	Port         int
	CacheEnabled bool
}

// newMCPServer creates and configures an MCP server with all ariatest tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	s := &mcpServer{
		docs:   make(map[string]dom.Node),
		engine: query.Default(),
	}
	if !cfg.CacheEnabled {
		s.engine.CacheScope(false, false)
	}

	s.mcp = mcpserver.NewMCPServer(
		"ariatest",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// load
	s.mcp.AddTool(
		mcp.NewTool("load",
			mcp.WithDescription("Parse an HTML document and store it under a name for later queries"),
			mcp.WithString("name", mcp.Description("Name to store the document under"), mcp.Required()),
			mcp.WithString("html", mcp.Description("Inline HTML markup")),
			mcp.WithString("file", mcp.Description("Path to an HTML file")),
		),
		s.handleLoad,
	)

	// unload
	s.mcp.AddTool(
		mcp.NewTool("unload",
			mcp.WithDescription("Remove a loaded document"),
			mcp.WithString("name", mcp.Description("Name of the document to remove"), mcp.Required()),
		),
		s.handleUnload,
	)

	// list_docs
	s.mcp.AddTool(
		mcp.NewTool("list_docs",
			mcp.WithDescription("List the names of all loaded documents"),
		),
		s.handleListDocs,
	)

	// query
	s.mcp.AddTool(
		mcp.NewTool("query",
			mcp.WithDescription("Find elements in a document by role, text, label, test ID, class, id, or tag name. Specify exactly one query family."),
			mcp.WithString("doc", mcp.Description("Name of a loaded document")),
			mcp.WithString("html", mcp.Description("Inline HTML markup (alternative to doc)")),
			mcp.WithString("role", mcp.Description("Find by computed ARIA role")),
			mcp.WithNumber("level", mcp.Description("Heading level (with role=heading)")),
			mcp.WithString("name", mcp.Description("Accessible-name substring filter (with role)")),
			mcp.WithString("text", mcp.Description("Find by text content substring")),
			mcp.WithString("label", mcp.Description("Find by associated label text")),
			mcp.WithString("test_id", mcp.Description("Find by test ID")),
			mcp.WithString("test_id_attribute", mcp.Description("Attribute for test-id queries (default: data-testid)")),
			mcp.WithString("class", mcp.Description("Find by CSS class token")),
			mcp.WithString("id", mcp.Description("Find by id attribute")),
			mcp.WithString("tag", mcp.Description("Find by tag name")),
			mcp.WithObject("attrs", mcp.Description("Attribute filters for tag queries (key in_class matches class substring)")),
			mcp.WithBoolean("single", mcp.Description("Require exactly one match; error on zero or multiple")),
		),
		s.handleQuery,
	)

	// assert
	s.mcp.AddTool(
		mcp.NewTool("assert",
			mcp.WithDescription("Assert that an element exists with expected properties, or that it does not exist. Uses the same query families as the query tool."),
			mcp.WithString("doc", mcp.Description("Name of a loaded document")),
			mcp.WithString("html", mcp.Description("Inline HTML markup (alternative to doc)")),
			mcp.WithString("role", mcp.Description("Find by computed ARIA role")),
			mcp.WithNumber("level", mcp.Description("Heading level (with role=heading)")),
			mcp.WithString("name", mcp.Description("Accessible-name substring filter (with role)")),
			mcp.WithString("text", mcp.Description("Find by text content substring")),
			mcp.WithString("label", mcp.Description("Find by associated label text")),
			mcp.WithString("test_id", mcp.Description("Find by test ID")),
			mcp.WithString("test_id_attribute", mcp.Description("Attribute for test-id queries (default: data-testid)")),
			mcp.WithString("class", mcp.Description("Find by CSS class token")),
			mcp.WithString("id", mcp.Description("Find by id attribute")),
			mcp.WithString("tag", mcp.Description("Find by tag name")),
			mcp.WithBoolean("gone", mcp.Description("Assert the element does NOT exist")),
			mcp.WithString("text_content", mcp.Description("Assert trimmed text content equals this string")),
			mcp.WithBoolean("all", mcp.Description("Assert against all matches instead of a single element")),
			mcp.WithNumber("count", mcp.Description("Assert the number of matches (with all)")),
			mcp.WithNumber("nth", mcp.Description("Apply element checks to the nth match (with all)")),
		),
		s.handleAssert,
	)

	// inspect
	s.mcp.AddTool(
		mcp.NewTool("inspect",
			mcp.WithDescription("Return the element tree of a document annotated with computed ARIA roles and accessible names"),
			mcp.WithString("doc", mcp.Description("Name of a loaded document")),
			mcp.WithString("html", mcp.Description("Inline HTML markup (alternative to doc)")),
			mcp.WithBoolean("roles_only", mcp.Description("Only show elements with a computed role")),
		),
		s.handleInspect,
	)

	// cache_stats
	s.mcp.AddTool(
		mcp.NewTool("cache_stats",
			mcp.WithDescription("Report hit/miss statistics for the traversal and role caches"),
		),
		s.handleCacheStats,
	)

	// cache_clear
	s.mcp.AddTool(
		mcp.NewTool("cache_clear",
			mcp.WithDescription("Clear the traversal and role caches"),
		),
		s.handleCacheClear,
	)
}

func resultToText(result interface{}) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return string(b)
}

// resolveContainer returns the container named by "doc" or parses inline
// "html". Caller must hold s.mu when using "doc".
func (s *mcpServer) resolveContainer(params map[string]interface{}) (dom.Node, error) {
	name := stringParam(params, "doc", "")
	markup := stringParam(params, "html", "")

	switch {
	case name != "" && markup != "":
		return nil, fmt.Errorf("specify doc or html, not both")
	case name != "":
		container, ok := s.docs[name]
		if !ok {
			return nil, fmt.Errorf("no document loaded under %q", name)
		}
		return container, nil
	case markup != "":
		return dom.ParseFragment(markup)
	default:
		return nil, fmt.Errorf("specify doc or html")
	}
}

// criteriaFromParams builds query criteria from MCP tool arguments.
func criteriaFromParams(params map[string]interface{}) (criteria, error) {
	c := criteria{
		role:       stringParam(params, "role", ""),
		level:      intParam(params, "level", 0),
		name:       stringParam(params, "name", ""),
		text:       stringParam(params, "text", ""),
		label:      stringParam(params, "label", ""),
		testID:     stringParam(params, "test_id", ""),
		testIDAttr: stringParam(params, "test_id_attribute", ""),
		class:      stringParam(params, "class", ""),
		id:         stringParam(params, "id", ""),
		tag:        stringParam(params, "tag", ""),
	}
	if raw, ok := params["attrs"].(map[string]interface{}); ok {
		c.attrs = make(map[string]string, len(raw))
		for k, v := range raw {
			c.attrs[k] = fmt.Sprintf("%v", v)
		}
	}
	return c, c.validate()
}

func (s *mcpServer) handleLoad(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	markup := stringParam(params, "html", "")
	file := stringParam(params, "file", "")

	var container dom.Node
	var err error
	switch {
	case markup != "" && file != "":
		return mcp.NewToolResultError("specify html or file, not both"), nil
	case markup != "":
		container, err = dom.ParseFragment(markup)
	case file != "":
		container, err = dom.ParseFile(file)
	default:
		return mcp.NewToolResultError("specify html or file"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	_, replaced := s.docs[name]
	if replaced {
		// Drop cache entries keyed on the replaced tree.
		s.engine.ClearCaches()
	}
	s.docs[name] = container
	s.mu.Unlock()

	result := struct {
		OK       bool   `yaml:"ok"`
		Doc      string `yaml:"doc"`
		Replaced bool   `yaml:"replaced,omitempty"`
	}{OK: true, Doc: name, Replaced: replaced}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleUnload(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name", "")

	s.mu.Lock()
	_, ok := s.docs[name]
	if ok {
		delete(s.docs, name)
		s.engine.ClearCaches()
	}
	s.mu.Unlock()

	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no document loaded under %q", name)), nil
	}
	result := struct {
		OK  bool   `yaml:"ok"`
		Doc string `yaml:"doc"`
	}{OK: true, Doc: name}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleListDocs(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	s.mu.Unlock()
	sort.Strings(names)

	result := struct {
		OK   bool     `yaml:"ok"`
		Docs []string `yaml:"docs"`
	}{OK: true, Docs: names}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleQuery(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.mu.Lock()
	defer s.mu.Unlock()

	container, err := s.resolveContainer(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c, err := criteriaFromParams(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if boolParam(params, "single", false) {
		el, err := c.get(s.engine, container)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result := struct {
			OK      bool        `yaml:"ok"`
			Action  string      `yaml:"action"`
			Element ElementInfo `yaml:"element"`
		}{OK: true, Action: "query " + c.describe(), Element: elementInfo(el)}
		return mcp.NewToolResultText(resultToText(result)), nil
	}

	matches := c.queryAll(s.engine, container)
	result := QueryResult{
		OK:      true,
		Action:  "query " + c.describe(),
		Total:   len(matches),
		Matches: elementInfos(matches),
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleAssert(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.mu.Lock()
	defer s.mu.Unlock()

	container, err := s.resolveContainer(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c, err := criteriaFromParams(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	f := assertFlags{
		gone:  boolParam(params, "gone", false),
		all:   boolParam(params, "all", false),
		count: intParam(params, "count", -1),
		nth:   intParam(params, "nth", -1),
	}
	if v, ok := params["text_content"].(string); ok {
		f.textContent = v
		f.hasTextContent = true
	}
	if !f.all && (f.count >= 0 || f.nth >= 0) {
		return mcp.NewToolResultError("count and nth require all"), nil
	}

	chk, err := buildChecker(c, f)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := AssertResult{OK: true, Action: "assert " + c.describe(), Pass: true}
	if err := chk.Check(container); err != nil {
		result.OK = false
		result.Pass = false
		result.Error = err.Error()
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleInspect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.mu.Lock()
	defer s.mu.Unlock()

	container, err := s.resolveContainer(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rolesOnly := boolParam(params, "roles_only", false)
	result := InspectResult{OK: true, Tree: buildTree(container, rolesOnly)}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleCacheStats(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := struct {
		OK     bool                        `yaml:"ok"`
		Caches map[string]query.CacheStats `yaml:"caches"`
	}{OK: true, Caches: s.engine.CacheStatsByName()}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleCacheClear(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engine.ClearCaches()
	result := struct {
		OK bool `yaml:"ok"`
	}{OK: true}
	return mcp.NewToolResultText(resultToText(result)), nil
}
