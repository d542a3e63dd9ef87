package pipeline

import "github.com/dhallcore/dhallcore/internal/term"

// PipelineContext threads a single document through Load -> TypeCheck ->
// Normalize -> Render. Processors run unconditionally and append to Errors
// instead of aborting, so a caller driving an interactive tool (a CLI or an
// editor integration) sees every stage's diagnostics in one pass rather than
// only the first.
type PipelineContext struct {
	// Source is the wire-encoded (YAML/JSON) document as given by the
	// caller; Load populates Term from it.
	Source []byte

	Term   term.Term
	Type   term.Term
	Normal term.Term
	// Rendered is the pretty-printed form of Normal, set by a rendering
	// stage.
	Rendered string

	Errors []error
}

// NewPipelineContext starts a pipeline run from a wire-encoded source
// document.
func NewPipelineContext(source []byte) *PipelineContext {
	return &PipelineContext{Source: source}
}

// Fail appends err to Errors and returns ctx so a Processor can write
// `return ctx.Fail(err)`.
func (c *PipelineContext) Fail(err error) *PipelineContext {
	c.Errors = append(c.Errors, err)
	return c
}

// OK reports whether every stage so far has succeeded.
func (c *PipelineContext) OK() bool {
	return len(c.Errors) == 0
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }
