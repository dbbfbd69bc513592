// Package viewer implements the interactive terrain viewer loop.
package viewer

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-terrain/internal/config"
	"github.com/Faultbox/lowpoly-terrain/internal/engine/camera"
	"github.com/Faultbox/lowpoly-terrain/internal/engine/glmesh"
	"github.com/Faultbox/lowpoly-terrain/internal/engine/input"
	"github.com/Faultbox/lowpoly-terrain/internal/engine/lighting"
	"github.com/Faultbox/lowpoly-terrain/internal/engine/renderer"
	"github.com/Faultbox/lowpoly-terrain/internal/engine/window"
	"github.com/Faultbox/lowpoly-terrain/internal/scene"
	"github.com/Faultbox/lowpoly-terrain/internal/terrain"
)

var sun = lighting.Sun{Azimuth: 135, Elevation: 50}

// Viewer shows one generated terrain and rebuilds it on request.
type Viewer struct {
	cfg        *config.Config
	configPath string
	log        *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	mesh     *glmesh.Mesh
	host     *scene.Host

	samplerSeed uint64
	running     bool
}

// New opens the window and generates the first terrain. configPath is
// re-read on F5 and may be empty.
func New(cfg *config.Config, configPath string, log *zap.Logger) (*Viewer, error) {
	v := &Viewer{
		cfg:         cfg,
		configPath:  configPath,
		log:         log,
		input:       input.New(),
		camera:      camera.NewOrbitCamera(),
		samplerSeed: cfg.Landscape.SamplerSeed,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "Low-poly Terrain",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: [3]float32{0.52, 0.68, 0.82},
	}, log.Named("renderer"))
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.mesh, err = glmesh.New()
	if err != nil {
		v.window.Close()
		return nil, err
	}
	v.host = scene.NewHost(v.mesh, log.Named("scene"))

	if err := v.regenerate(); err != nil {
		v.Close()
		return nil, err
	}
	return v, nil
}

// Run processes input and draws until the window closes or Esc is pressed.
func (v *Viewer) Run() error {
	v.running = true
	frames := 0
	fpsTimer := time.Now()

	for v.running {
		if v.input.Update() {
			break
		}
		for _, e := range v.input.Events() {
			v.handle(e)
		}

		v.renderer.Begin()
		v.mesh.Draw(v.camera.ViewProjection(v.window.AspectRatio()), sun.LightDir())
		v.window.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frames))
			frames = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (v *Viewer) handle(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		v.renderer.Resize(v.window.DrawableSize())
	case input.EventDrag:
		v.camera.HandleDrag(e.DX, e.DY)
	case input.EventWheel:
		v.camera.HandleZoom(e.DY)
	case input.EventKeyDown:
		v.handleKey(e.Key)
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_R:
		v.samplerSeed++
		v.report(v.regenerate())
	case sdl.SCANCODE_G:
		v.cfg.Landscape.ColorMode = nextColorMode(v.cfg.Landscape.ColorMode)
		v.log.Info("color mode", zap.String("mode", v.cfg.Landscape.ColorMode))
		v.report(v.regenerate())
	case sdl.SCANCODE_M:
		if v.cfg.Mode == config.ModeLandscape {
			v.cfg.Mode = config.ModeSphere
		} else {
			v.cfg.Mode = config.ModeLandscape
		}
		v.report(v.regenerate())
	case sdl.SCANCODE_W:
		v.renderer.SetWireframe(!v.renderer.Wireframe())
	case sdl.SCANCODE_F5:
		v.report(v.reload())
	}
}

// nextColorMode cycles the colour schemes offered by the G key.
func nextColorMode(mode string) string {
	if mode == config.ColorModeRandom {
		return config.ColorModeHeightGradient
	}
	return config.ColorModeRandom
}

func (v *Viewer) report(err error) {
	if err != nil {
		v.log.Error("regeneration failed", zap.Error(err))
	}
}

// reload re-reads the config file and regenerates. The window settings
// of the running viewer are kept.
func (v *Viewer) reload() error {
	if v.configPath == "" {
		v.log.Warn("no config file to reload")
		return nil
	}
	cfg, err := config.Reload(v.configPath)
	if err != nil {
		return err
	}
	cfg.Window = v.cfg.Window
	v.cfg = cfg
	v.samplerSeed = cfg.Landscape.SamplerSeed
	v.log.Info("config reloaded", zap.String("path", v.configPath))
	return v.regenerate()
}

func (v *Viewer) regenerate() error {
	gen := terrain.NewGenerator(newRand(v.samplerSeed), v.log.Named("terrain"))
	res, err := v.host.Generate(gen, v.cfg)
	if err != nil {
		return err
	}
	v.log.Info("terrain ready", scene.Summary(res, v.cfg)...)

	v.camera.FitToBounds(res.Mesh.Bounds())
	v.window.SetTitle(fmt.Sprintf("Low-poly Terrain: %s, %d triangles, seed %d",
		v.cfg.Mode, res.Mesh.TriangleCount(), v.samplerSeed))
	return nil
}

// Close releases GL and window resources.
func (v *Viewer) Close() {
	if v.mesh != nil {
		v.mesh.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
