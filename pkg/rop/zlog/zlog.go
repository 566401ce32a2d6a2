package zlog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/ropt/pkg/rop"
)

type levelsKey struct{}

// Levels selects the event level per variant.
type Levels struct {
	Ok   zerolog.Level
	Fail zerolog.Level
}

var defaultLevels = Levels{Ok: zerolog.DebugLevel, Fail: zerolog.ErrorLevel}

func WithLevels(ctx context.Context, ok, fail zerolog.Level) context.Context {
	return context.WithValue(ctx, levelsKey{}, Levels{Ok: ok, Fail: fail})
}

func GetLevels(ctx context.Context) Levels {
	if l, ok := ctx.Value(levelsKey{}).(Levels); ok {
		return l
	}
	return defaultLevels
}

// Result writes one event describing r to the logger bound to ctx
// (zerolog.Ctx). Nothing is written when ctx carries no logger.
func Result[T any](ctx context.Context, msg string, r rop.Result[T]) {
	levels := GetLevels(ctx)
	logger := zerolog.Ctx(ctx)

	v, err := r.Peek()
	if err != nil {
		ev := logger.WithLevel(levels.Fail).
			Str("result_id", r.Id().String()).
			Time("created_at", r.CreatedAt())
		if errs := rop.GetErrors(err); len(errs) > 1 {
			ev = ev.Errs("errors", errs)
		} else {
			ev = ev.Err(err)
		}
		ev.Msg(msg)
		return
	}

	logger.WithLevel(levels.Ok).
		Str("result_id", r.Id().String()).
		Time("created_at", r.CreatedAt()).
		Interface("value", v).
		Msg(msg)
}

func Option[T any](ctx context.Context, msg string, o rop.Option[T]) {
	ev := zerolog.Ctx(ctx).WithLevel(GetLevels(ctx).Ok)

	if v, ok := o.Peek(); ok {
		ev = ev.Bool("present", true).Interface("value", v)
	} else {
		ev = ev.Bool("present", false)
	}
	ev.Msg(msg)
}

// Tee returns a pass-through step that logs every result it sees.
func Tee[T any](ctx context.Context, msg string) func(rop.Result[T]) rop.Result[T] {
	return func(r rop.Result[T]) rop.Result[T] {
		Result(ctx, msg, r)
		return r
	}
}
