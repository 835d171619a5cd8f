package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	capsolver "github.com/spetersoncode/capsolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testArgs struct {
	Query string `json:"query" jsonschema_description:"Search query"`
}

type optionalArgs struct {
	Name  string `json:"name"`
	Limit int    `json:"limit,omitempty"`
}

func echo(ctx context.Context, args testArgs) (string, error) {
	return "result: " + args.Query, nil
}

func TestRegistryAdd(t *testing.T) {
	t.Run("registers single tool with Func", func(t *testing.T) {
		registry := NewRegistry().Add(Func("search", "Search the web", echo))

		assert.Equal(t, 1, registry.Len())
		handler, ok := registry.Get("search")
		assert.True(t, ok)
		assert.NotNil(t, handler)

		tool, ok := registry.GetTool("search")
		assert.True(t, ok)
		assert.Equal(t, "search", tool.Name)
		assert.Equal(t, "Search the web", tool.Description)
	})

	t.Run("chains multiple Add calls", func(t *testing.T) {
		registry := NewRegistry().
			Add(Func("second", "Second tool", echo)).
			Add(Func("first", "First tool", echo), Func("third", "Third tool", echo))

		assert.Equal(t, 3, registry.Len())
		assert.Equal(t, []string{"first", "second", "third"}, registry.Names())

		tools := registry.Tools()
		require.Len(t, tools, 3)
		assert.Equal(t, "first", tools[0].Name)
		assert.Equal(t, "third", tools[2].Name)
	})

	t.Run("panics on duplicate tool name", func(t *testing.T) {
		assert.Panics(t, func() {
			NewRegistry().Add(Func("dupe", "First", echo), Func("dupe", "Duplicate", echo))
		})
	})
}

func TestRegistryRegister(t *testing.T) {
	t.Run("rejects duplicates with a typed error", func(t *testing.T) {
		registry := NewRegistry()
		reg := Func("dupe", "First", echo)
		require.NoError(t, registry.Register(reg.Tool, reg.Handler))

		err := registry.Register(reg.Tool, reg.Handler)
		var dup *ErrToolAlreadyRegistered
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "dupe", dup.Name)
		assert.Equal(t, "tool: already registered: dupe", err.Error())
	})

	t.Run("RegisterAll stops at the first error", func(t *testing.T) {
		registry := NewRegistry()
		err := registry.RegisterAll(Func("a", "A", echo), Func("a", "A again", echo), Func("b", "B", echo))

		assert.Error(t, err)
		assert.Equal(t, []string{"a"}, registry.Names())
	})

	t.Run("Unregister removes a tool", func(t *testing.T) {
		registry := NewRegistry().Add(Func("gone", "Gone", echo))
		registry.Unregister("gone")
		registry.Unregister("never-there")

		assert.Equal(t, 0, registry.Len())
		_, ok := registry.GetTool("gone")
		assert.False(t, ok)
	})
}

func TestFunc(t *testing.T) {
	t.Run("handler unmarshals arguments", func(t *testing.T) {
		reg := Func("test", "Test", echo)

		result, err := reg.Handler(context.Background(), capsolver.ToolCall{
			ID:        "call_1",
			Name:      "test",
			Arguments: `{"query": "hello world"}`,
		})

		require.NoError(t, err)
		assert.Equal(t, "result: hello world", result)
	})

	t.Run("empty arguments decode as zero value", func(t *testing.T) {
		reg := Func("test", "Test", echo)

		result, err := reg.Handler(context.Background(), capsolver.ToolCall{Name: "test"})

		require.NoError(t, err)
		assert.Equal(t, "result: ", result)
	})

	t.Run("handler returns error on invalid JSON", func(t *testing.T) {
		reg := Func("test", "Test", echo)

		_, err := reg.Handler(context.Background(), capsolver.ToolCall{
			ID:        "call_1",
			Name:      "test",
			Arguments: `{invalid json}`,
		})

		var invalid *ErrInvalidArguments
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "test", invalid.Name)
	})
}

func TestSchemaFor(t *testing.T) {
	schema, err := SchemaFor[optionalArgs]()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(schema, &doc))

	assert.Equal(t, "object", doc["type"])
	assert.NotContains(t, doc, "$schema")
	assert.NotContains(t, doc, "$ref")

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "limit")
	assert.Equal(t, []any{"name"}, doc["required"])
}

func TestSchemaForUnnamedStructs(t *testing.T) {
	t.Run("empty struct", func(t *testing.T) {
		var schema json.RawMessage
		require.NotPanics(t, func() {
			var err error
			schema, err = SchemaFor[struct{}]()
			require.NoError(t, err)
		})

		var doc map[string]any
		require.NoError(t, json.Unmarshal(schema, &doc))
		assert.Equal(t, "object", doc["type"])
		assert.NotContains(t, doc, "required")
	})

	t.Run("anonymous struct with fields", func(t *testing.T) {
		var schema json.RawMessage
		require.NotPanics(t, func() {
			var err error
			schema, err = SchemaFor[struct {
				Name string `json:"name"`
			}]()
			require.NoError(t, err)
		})

		var doc map[string]any
		require.NoError(t, json.Unmarshal(schema, &doc))
		assert.Equal(t, "object", doc["type"])
		props, ok := doc["properties"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, props, "name")
	})
}

func TestRegistryExecute(t *testing.T) {
	t.Run("returns content with the call ID", func(t *testing.T) {
		registry := NewRegistry().Add(
			Func("greet", "Greet someone", func(ctx context.Context, args struct {
				Name string `json:"name"`
			}) (string, error) {
				return "Hello, " + args.Name + "!", nil
			}),
		)

		result, err := registry.Execute(context.Background(), capsolver.ToolCall{
			ID:        "call_123",
			Name:      "greet",
			Arguments: `{"name": "World"}`,
		})

		require.NoError(t, err)
		assert.Equal(t, "call_123", result.ToolCallID)
		assert.Equal(t, "Hello, World!", result.Content)
		assert.False(t, result.IsError)
	})

	t.Run("handler errors become error results", func(t *testing.T) {
		registry := NewRegistry().Add(
			Func("broken", "Always fails", func(ctx context.Context, args testArgs) (string, error) {
				return "", errors.New("it broke")
			}),
		)

		result, err := registry.Execute(context.Background(), capsolver.ToolCall{ID: "c", Name: "broken"})

		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "it broke", result.Content)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := NewRegistry().Execute(context.Background(), capsolver.ToolCall{Name: "missing"})

		var notFound *ErrToolNotFound
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "tool: not found: missing", err.Error())
	})
}
