package usecase

import "context"

// AcceptanceCriterion is a business rule an input must satisfy.
//
// A nil *Error and nil error means the input complies. A non-nil *Error
// describes why it does not. A non-nil error is an infrastructure fault
// that kept the rule from being evaluated.
type AcceptanceCriterion[T any] interface {
	Complies(ctx context.Context, input T) (*Error, error)
}

// CriterionFunc adapts a function to AcceptanceCriterion.
type CriterionFunc[T any] func(ctx context.Context, input T) (*Error, error)

func (f CriterionFunc[T]) Complies(ctx context.Context, input T) (*Error, error) {
	return f(ctx, input)
}

// AllOf composes criteria. They run in order and the first failure wins.
func AllOf[T any](criteria ...AcceptanceCriterion[T]) AcceptanceCriterion[T] {
	return CriterionFunc[T](func(ctx context.Context, input T) (*Error, error) {
		for _, c := range criteria {
			uerr, err := c.Complies(ctx, input)
			if err != nil || uerr != nil {
				return uerr, err
			}
		}
		return nil, nil
	})
}
