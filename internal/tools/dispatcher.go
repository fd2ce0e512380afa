package tools

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/crystaldolphin/supatools/internal/schema"
	"github.com/crystaldolphin/supatools/internal/shared/stringutils"
	"github.com/crystaldolphin/supatools/internal/supabase"
)

const argsPreviewLen = 200

// ErrUnknownTool matches every *UnknownToolError via errors.Is.
var ErrUnknownTool = errors.New("unknown tool")

// UnknownToolError reports a call to a tool that is not registered.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string { return "Unknown tool: " + e.Name }

func (e *UnknownToolError) Is(target error) bool { return target == ErrUnknownTool }

// Dispatcher routes a call to its tool: lookup, then validation, then
// execution, then the envelope. It holds no per-call state and is safe for
// concurrent use.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// Catalog lists the registered tools. It makes no external calls.
func (d *Dispatcher) Catalog() ([]CatalogEntry, error) {
	return d.registry.Catalog()
}

// Invoke runs the named tool with raw arguments. Errors come back unchanged;
// nothing is retried and no envelope is produced on failure.
func (d *Dispatcher) Invoke(ctx context.Context, name string, raw map[string]any) (schema.Envelope, error) {
	start := time.Now()
	log := d.logger.With("request_id", uuid.NewString(), "tool", name)

	tool, ok := d.registry.Get(schema.ToolName(name))
	if !ok {
		err := &UnknownToolError{Name: name}
		log.Warn("Tool call rejected", "kind", ErrorKind(err))
		return schema.Envelope{}, err
	}
	if log.Enabled(ctx, slog.LevelDebug) {
		log.Debug("Tool call", "args", argsPreview(raw))
	}

	env, err := d.run(ctx, tool, raw)
	if err != nil {
		log.Warn("Tool call failed", "kind", ErrorKind(err), "duration", time.Since(start), "error", err)
		return schema.Envelope{}, err
	}
	log.Info("Tool call done", "duration", time.Since(start), "bytes", len(env.Text()))
	return env, nil
}

func (d *Dispatcher) run(ctx context.Context, tool Tool, raw map[string]any) (schema.Envelope, error) {
	args, err := schema.Decode(tool.Definition().Name, raw)
	if err != nil {
		return schema.Envelope{}, err
	}
	result, err := tool.Run(ctx, args)
	if err != nil {
		return schema.Envelope{}, err
	}
	return schema.NewEnvelope(result)
}

// ErrorKind names the category of err for logs and transports.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, schema.ErrValidation):
		return "validation"
	case errors.Is(err, ErrUnknownTool):
		return "unknown_tool"
	case errors.Is(err, supabase.ErrManagementAPI):
		return "management_api"
	case errors.Is(err, supabase.ErrBackend):
		return "backend"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "internal"
}

func argsPreview(raw map[string]any) string {
	data, err := json.Marshal(raw)
	if err != nil {
		return "<unencodable>"
	}
	return stringutils.Truncate(string(data), argsPreviewLen)
}
