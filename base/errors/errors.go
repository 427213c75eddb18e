// Copyright (c) 2025, The tridraw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a log-and-return idiom on top of the
// standard errors package: wherever an error is only ever fatal or
// informational, Log(err) records it through slog with the caller's
// location and hands the same error back for normal propagation.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error with the given text, per [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Join wraps [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// As wraps [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is wraps [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Log takes the given error and logs it if it is non-nil,
// returning it unchanged so that it can be propagated further.
// The log record carries the file and line of the caller.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 is a version of [Log] for functions that return a value
// in addition to an error: errors.Log1(f(x)).
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil.
// Reserved for setup steps that have no recovery path.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// CallerInfo returns the file and line of the function two
// frames up from its caller, as a "file:line" string.
func CallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
