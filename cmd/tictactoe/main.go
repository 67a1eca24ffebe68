// Command tictactoe runs a mouse-driven tic-tac-toe game in a GPU-rendered
// window.
//
// Architecture:
//
//	Game (rules, turn state) → mesh.Generate (quad batch) → render.Renderer → Window
//
// Rendering mode: event-driven with an animation token. The token is kept
// alive for the whole session so sprite placement animations advance at
// VSync.
//
// Configuration comes from an optional YAML file named by TICTACTOE_CONFIG
// plus TICTACTOE_* environment overrides; see internal/config.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	tictactoe "github.com/gogpu/tictactoe"
	"github.com/gogpu/tictactoe/internal/config"
	"github.com/gogpu/tictactoe/mesh"
	"github.com/gogpu/tictactoe/render"
	"github.com/gogpu/tictactoe/sprite"
)

func main() {
	configPath := flag.String("config", os.Getenv("TICTACTOE_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	tictactoe.SetLogger(newLogger(cfg.LogLevel))

	sheet := loadSheet(cfg.SpriteSheet)

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(false)) // Event-driven: animation token drives redraws.

	board := tictactoe.NewBoard()
	game := tictactoe.NewGame(windowTitles{})

	var renderer *render.Renderer
	var animToken *gogpu.AnimationToken
	var frame int

	// Last known surface size, for click mapping.
	var boardW, boardH int

	app.OnDraw(func(dc *gogpu.Context) {
		if frame == 0 {
			log.Printf("Backend: %s", dc.Backend())
			animToken = app.StartAnimation()
		}

		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		boardW, boardH = w, h

		if renderer == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			renderer, err = render.New(provider, sheet, gputypes.TextureFormatUndefined)
			if err != nil {
				log.Fatalf("Failed to create renderer: %v", err)
			}
		}

		verts := mesh.Generate(board)
		if err := renderer.Upload(verts); err != nil {
			log.Printf("Frame %d: upload error: %v", frame, err)
			return
		}
		if err := renderer.Draw(dc.SurfaceView()); err != nil {
			log.Printf("Frame %d: draw error: %v", frame, err)
		}
		frame++
	})

	app.EventSource().OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
		if button != gpucontext.MouseButtonLeft {
			return
		}
		game.HandleClick(x, y, board, boardW, boardH)
	})

	app.OnClose(func() {
		if animToken != nil {
			animToken.Stop()
		}
		if renderer != nil {
			renderer.Destroy()
		}
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

// windowTitles publishes turn and victory announcements. The window title
// is fixed after creation (gogpu exposes no title mutation), so
// announcements go to the log instead.
type windowTitles struct{}

func (windowTitles) SetTitle(title string) {
	tictactoe.Logger().Info("announcement", "title", title)
}

// loadSheet returns the sprite sheet: the PNG at path when set and
// loadable, the generated sheet otherwise.
func loadSheet(path string) *image.RGBA {
	if path != "" {
		sheet, err := sprite.Load(path)
		if err == nil {
			return sheet
		}
		tictactoe.Logger().Warn("sprite sheet load failed, using generated sheet",
			"path", path, "error", err)
	}
	return sprite.Generate()
}

// newLogger builds a text slog logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
