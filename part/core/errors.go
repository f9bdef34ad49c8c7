package core

import "errors"

// ErrInvalidPartitions indicates a partition count below one.
var ErrInvalidPartitions = errors.New("partition count must be at least 1")

// ErrNilSource indicates a builder was constructed without an upstream source.
var ErrNilSource = errors.New("upstream source is nil")

// ErrNilBuilder indicates a nil context or data builder callback was passed
// to a build.
var ErrNilBuilder = errors.New("builder callback is nil")
