package utils

// Runnable is one step of a sequence that stops at the first failure.
type Runnable func() error

func ToRunnable1[T any](f func(T) error, a T) Runnable {
	return func() error {
		return f(a)
	}
}

// Run runs the steps in order and returns the first error.
func Run(rs ...Runnable) error {
	for _, r := range rs {
		if err := r(); err != nil {
			return err
		}
	}
	return nil
}
