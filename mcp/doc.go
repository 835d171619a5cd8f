// Package mcp serves a [tool.Registry] over the Model Context Protocol.
//
// Any MCP-capable agent runtime can then discover the CAPTCHA tools and
// call them as plain string-in, string-out operations.
//
//	s := solver.New(os.Getenv("CAPSOLVER_API_KEY"))
//	registry := tool.NewRegistry().Add(tool.CaptchaTools(s)...)
//
//	if err := mcp.ServeStdio(registry, mcp.WithName("capsolver")); err != nil {
//	    log.Fatal(err)
//	}
//
// Failed solves are returned as MCP error results carrying the same text a
// direct tool call would return ("Failed: ...", "Error: ...",
// "Timeout waiting for solution").
package mcp
