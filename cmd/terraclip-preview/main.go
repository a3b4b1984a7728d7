// Package main renders the assembled clipmap as a wireframe so mesh
// stitching can be inspected visually.
package main

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/fastland/terraclip/internal/clipmap"
	"github.com/fastland/terraclip/internal/config"
	"github.com/fastland/terraclip/internal/geoclipmap"
	"github.com/fastland/terraclip/internal/logger"
	"github.com/fastland/terraclip/internal/render"
)

const vertexShader = `#version 410 core
layout(location = 0) in vec3 aPosition;

uniform mat4 uMVP;

void main() {
    gl_Position = uMVP * vec4(aPosition, 1.0);
}
`

const fragmentShader = `#version 410 core
uniform vec3 uColor;

out vec4 fragColor;

void main() {
    fragColor = vec4(uColor, 1.0);
}
`

// One tint per catalog slot so the pieces are distinguishable in wireframe.
var slotColors = [geoclipmap.SlotCount]mgl32.Vec3{
	{0.3, 0.8, 0.3}, // tile
	{0.8, 0.8, 0.3}, // filler
	{0.8, 0.4, 0.2}, // trim
	{0.3, 0.5, 0.9}, // cross
	{0.9, 0.2, 0.5}, // seam
	{0.2, 0.5, 0.2}, // tile inner
	{0.5, 0.5, 0.2}, // filler inner
	{0.5, 0.3, 0.1}, // trim inner
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Log.Error("preview failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	window, err := render.NewWindow(render.WindowConfig{
		Title:  "terraclip preview",
		Width:  cfg.Preview.Width,
		Height: cfg.Preview.Height,
		VSync:  cfg.Preview.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Close()

	program, err := render.CompileProgram(vertexShader, fragmentShader)
	if err != nil {
		return fmt.Errorf("preview shader: %w", err)
	}
	defer gl.DeleteProgram(program)
	locMVP := render.GetUniform(program, "uMVP")
	locColor := render.GetUniform(program, "uColor")

	backend := render.NewBackend()
	handles, err := geoclipmap.Generate(backend, cfg.Terrain.TileResolution, cfg.Terrain.Levels)
	if err != nil {
		return err
	}
	defer func() {
		for _, h := range handles {
			backend.ReleaseMesh(h)
		}
		if n := backend.MeshCount(); n != 0 {
			logger.Log.Warn("meshes leaked at shutdown", zap.Int("count", n))
		}
	}()

	placements, err := clipmap.Layout(cfg.Terrain.TileResolution, cfg.Terrain.Levels, mgl32.Vec2{})
	if err != nil {
		return err
	}
	logger.Log.Info("clipmap assembled",
		zap.Int("levels", cfg.Terrain.Levels),
		zap.Int("instances", len(placements)),
	)

	// The whole clipmap spans one seam footprint at the coarsest scale.
	extent := float32(int(1)<<(cfg.Terrain.Levels-1)) * float32(cfg.Terrain.TileResolution*4+2)

	gl.Enable(gl.DEPTH_TEST)
	if cfg.Preview.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.ClearColor(0.08, 0.09, 0.11, 1.0)

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			}
		}

		width, height := window.Size()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		proj := mgl32.Perspective(
			mgl32.DegToRad(55),
			float32(width)/float32(height),
			0.5,
			extent*4,
		)
		view := mgl32.LookAtV(
			mgl32.Vec3{extent * 0.45, extent * 0.5, extent * 0.45},
			mgl32.Vec3{0, 0, 0},
			mgl32.Vec3{0, 1, 0},
		)
		viewProj := proj.Mul4(view)

		gl.UseProgram(program)
		for _, p := range placements {
			model := mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).
				Mul4(mgl32.Scale3D(p.Scale, 1, p.Scale))
			mvp := viewProj.Mul4(model)

			gl.UniformMatrix4fv(locMVP, 1, false, &mvp[0])
			color := slotColors[p.Slot]
			gl.Uniform3f(locColor, color.X(), color.Y(), color.Z())
			backend.Draw(handles[p.Slot])
		}

		window.SwapBuffers()
	}
}
