// Package tool exposes CapSolver operations as named tools with string
// input and output, the contract agent runtimes use to call external code.
//
// This package includes:
//   - Registry and Handler types for tool management
//   - Function binding with schema generation from the arguments struct
//   - The CAPTCHA tool set backed by a [solver.Client]
//
// # Basic Usage
//
//	s := solver.New(os.Getenv("CAPSOLVER_API_KEY"))
//
//	registry := tool.NewRegistry().Add(tool.CaptchaTools(s)...)
//
//	result, err := registry.Execute(ctx, capsolver.ToolCall{
//	    ID:        "call_1",
//	    Name:      tool.SolveTurnstileName,
//	    Arguments: `{"website_url":"https://example.com","website_key":"0x4AAA"}`,
//	})
//	if err != nil {
//	    log.Fatal(err) // unknown tool
//	}
//	fmt.Println(result.Content) // token, "Failed: ...", "Error: ..." or "Timeout waiting for solution"
//
// # Argument Schemas
//
// Parameters are reflected from the arguments struct with
// github.com/invopop/jsonschema:
//
//	json:"name"                     - Property name
//	json:"name,omitempty"           - Optional property
//	jsonschema_description:"text"   - Description for the model
//	jsonschema:"enum=a,enum=b"      - Allowed values
//	jsonschema:"default=a"          - Default value
//
// # Results
//
// Handlers never fail the call for solver failures. A failed outcome is
// returned as a ToolResult with IsError set and the outcome text as
// content, so the calling agent can carry on.
package tool
