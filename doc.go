// Package tictactoe implements a single-window, mouse-driven tic-tac-toe
// game with GPU-accelerated sprite rendering for the GoGPU ecosystem.
//
// # Overview
//
// The root package owns the game model: a 3x3 [Board] of [Cell] tiles and
// a [Game] that translates clicks into moves, detects victory along the
// eight fixed winning lines, and alternates turns. The model is free of
// any platform dependency; the windowing host talks to it through the
// small [TitleSetter] interface.
//
// Rendering is split across sub-packages:
//
//   - mesh: turns the board into a flat textured-triangle vertex list,
//     advancing per-tile animation frames as a side effect
//   - sprite: the 20x3 sprite-sheet contract and its procedural generator
//   - render: a wgpu sprite pipeline that uploads the mesh and issues a
//     single draw per frame
//
// The binary in cmd/tictactoe wires these to a gogpu window.
//
// # Rules of play
//
// Cross moves first. Clicking an occupied cell, or clicking after the
// game is won, is a defined no-op. A full board with no winning line
// leaves the game unfinished; it simply accepts no further moves.
package tictactoe
