// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "errors"

// Renderer errors.
var (
	// ErrNilProvider is returned when New is called with a nil device provider.
	ErrNilProvider = errors.New("render: device provider is nil")

	// ErrNoHALDevice is returned when the provider does not expose HAL types.
	ErrNoHALDevice = errors.New("render: provider does not expose HAL types")

	// ErrNilSheet is returned when New is called without a sprite sheet image.
	ErrNilSheet = errors.New("render: sprite sheet is nil")

	// ErrDestroyed is returned when operating on a destroyed renderer.
	ErrDestroyed = errors.New("render: renderer is destroyed")

	// ErrNilSurfaceView is returned when Draw is called without a surface view.
	ErrNilSurfaceView = errors.New("render: surface view is nil")
)
