package pipeline

import (
	"github.com/dhallcore/dhallcore/internal/normalize"
	"github.com/dhallcore/dhallcore/internal/prettyprinter"
	"github.com/dhallcore/dhallcore/internal/typecheck"
	"github.com/dhallcore/dhallcore/internal/wire"
)

// LoadStage decodes ctx.Source into ctx.Term. Later stages still run on a
// decode failure (there is nothing left for them to do, but a processor that
// skips ahead when ctx.Term is nil keeps the "collect every diagnostic"
// contract uniform instead of special-casing the first stage).
var LoadStage = ProcessorFunc(func(ctx *PipelineContext) *PipelineContext {
	t, err := wire.Unmarshal(ctx.Source)
	if err != nil {
		return ctx.Fail(err)
	}
	ctx.Term = t
	return ctx
})

// TypeCheckStage synthesises ctx.Term's type into ctx.Type.
var TypeCheckStage = ProcessorFunc(func(ctx *PipelineContext) *PipelineContext {
	if ctx.Term == nil {
		return ctx
	}
	ty, typeErr := typecheck.TypeOf(ctx.Term)
	if typeErr != nil {
		return ctx.Fail(typeErr)
	}
	ctx.Type = ty
	return ctx
})

// NormalizeStage reduces ctx.Term to normal form. It runs even when
// TypeCheckStage failed: an ill-typed term can still usefully be shown in
// normal form for diagnosis (the reference implementation's own --quiet
// normalize path does the same).
var NormalizeStage = ProcessorFunc(func(ctx *PipelineContext) *PipelineContext {
	if ctx.Term == nil {
		return ctx
	}
	ctx.Normal = normalize.Normalize(ctx.Term)
	return ctx
})

// RenderStage pretty-prints ctx.Normal (or ctx.Term, if normalization never
// ran) into ctx.Rendered.
var RenderStage = ProcessorFunc(func(ctx *PipelineContext) *PipelineContext {
	t := ctx.Normal
	if t == nil {
		t = ctx.Term
	}
	if t == nil {
		return ctx
	}
	ctx.Rendered = prettyprinter.Print(t)
	return ctx
})

// Standard returns the Load -> TypeCheck -> Normalize -> Render pipeline
// that cmd/dhallcheck runs. internal/service does not use it; it calls wire
// and typecheck directly.
func Standard() *Pipeline {
	return New(LoadStage, TypeCheckStage, NormalizeStage, RenderStage)
}
