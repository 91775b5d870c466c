// Package usecase holds the contracts shared by every application operation:
// raw arguments, structured errors, acceptance criteria and the use case itself.
package usecase

import "context"

// UseCase performs one business transaction and reports its outcome as a result
// value of type R. A non-nil error is reserved for infrastructure faults and
// programming errors; expected outcomes are always encoded in R.
type UseCase[R any] interface {
	Invoke(ctx context.Context, args Args) (R, error)
}

// Func adapts a function to UseCase.
type Func[R any] func(ctx context.Context, args Args) (R, error)

func (f Func[R]) Invoke(ctx context.Context, args Args) (R, error) { return f(ctx, args) }

// ArgsValidator checks the shape of raw arguments. It returns one message per
// violation; an empty slice means the arguments are valid.
type ArgsValidator interface {
	Validate(args Args) []string
}

// ArgsValidatorFunc adapts a function to ArgsValidator.
type ArgsValidatorFunc func(args Args) []string

func (f ArgsValidatorFunc) Validate(args Args) []string { return f(args) }
