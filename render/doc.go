// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws the board as a batch of textured quads through the
// wgpu HAL.
//
// The renderer does not create its own GPU device. It borrows one from the
// hosting window via a device provider (see [New]), uploads the sprite sheet
// once as an RGBA texture, and then each frame uploads the vertex batch
// produced by the mesh package and records a single render pass against the
// surface texture view.
//
// All methods must be called from the thread that owns the window's event
// loop. The renderer performs no internal locking.
package render
