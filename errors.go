package minhash

import "errors"

var (
	// ErrInvalidConfig is returned by New when the slot or thread count is out of range.
	ErrInvalidConfig = errors.New("minhash: invalid config")

	// ErrUseBeforeInit is the panic value when Process or an estimator is called before
	// ProcessFirst.
	ErrUseBeforeInit = errors.New("minhash: sketch used before the first element was processed")

	// ErrAlreadyInitialized is the panic value when ProcessFirst is called twice.
	ErrAlreadyInitialized = errors.New("minhash: first element already processed")
)
