package tool

import (
	"context"
	"encoding/json"

	capsolver "github.com/spetersoncode/capsolver"
)

// Bind creates a Tool and Handler from a typed function.
// The JSON schema for tool parameters is generated from T.
//
// Example:
//
//	type SiteArgs struct {
//	    WebsiteURL string `json:"website_url" jsonschema_description:"Page with the challenge"`
//	}
//
//	t, h, err := tool.Bind("inspect", "Inspect a page",
//	    func(ctx context.Context, args SiteArgs) (string, error) {
//	        return args.WebsiteURL, nil
//	    })
func Bind[T any](name, description string, fn TypedHandler[T]) (capsolver.Tool, Handler, error) {
	schema, err := SchemaFor[T]()
	if err != nil {
		return capsolver.Tool{}, nil, err
	}

	t := capsolver.Tool{
		Name:        name,
		Description: description,
		Parameters:  schema,
	}
	return t, typed(name, fn), nil
}

// MustBind is like Bind but panics on error.
// This is useful for initialization code where errors should be fatal.
func MustBind[T any](name, description string, fn TypedHandler[T]) (capsolver.Tool, Handler) {
	t, h, err := Bind(name, description, fn)
	if err != nil {
		panic(err)
	}
	return t, h
}

// BindTo creates a tool from a typed function and registers it directly to a Registry.
func BindTo[T any](r *Registry, name, description string, fn TypedHandler[T]) error {
	t, h, err := Bind(name, description, fn)
	if err != nil {
		return err
	}
	return r.Register(t, h)
}

// typed adapts a TypedHandler to a Handler by decoding the call arguments.
// Empty arguments decode as the zero value of T.
func typed[T any](name string, fn TypedHandler[T]) Handler {
	return func(ctx context.Context, call capsolver.ToolCall) (string, error) {
		var args T
		if call.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
				return "", &ErrInvalidArguments{Name: name, Err: err}
			}
		}
		return fn(ctx, args)
	}
}
