package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"topdown/internal/commands"
	"topdown/internal/debug"
	"topdown/internal/engineconfig"
	"topdown/internal/graphics"
	"topdown/internal/input"
	"topdown/internal/logger"
	"topdown/internal/render"
	"topdown/internal/scenario"
	"topdown/internal/systems"
	"topdown/internal/terminal"
	"topdown/internal/world"
)

// defined flags
var (
	levelFlag    logLevelFlag
	configFlag   = flag.String("config", engineconfig.DefaultPath, "Engine config file")
	scenarioFlag = flag.String("scenario", "", "Scenario file; overrides the one named in the config")
	logFileFlag  = flag.Bool("logfile", true, "Write logs to a file instead of the console")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}

func main() {
	flag.Parse()
	log := logger.New(logger.Options{Level: levelFlag.value, ToFile: *logFileFlag})
	slog.SetDefault(log.Logger)
	err := run(log)
	if err != nil {
		log.Error("Fatal", "error", err)
	}
	log.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, err := engineconfig.Load(*configFlag)
	if err != nil {
		log.Warn("Using default engine config", "error", err)
	}
	if *scenarioFlag != "" {
		cfg.Scenario = *scenarioFlag
	}
	sc, err := scenario.Load(cfg.Scenario)
	if err != nil {
		return err
	}

	graphics.Open(graphics.Window{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Fullscreen: cfg.Window.Fullscreen,
		TargetFPS:  cfg.Window.TargetFPS,
	})
	defer graphics.Close()
	store := render.NewMeshStore()
	defer store.Unload()

	width, height := graphics.Size()
	vp := systems.Viewport{Width: width, Height: height}
	cc := cfg.CameraControl()
	w := world.New()
	if _, err := w.SpawnCamera(systems.NewCamera(sc.Eye(cfg.Eye()), vp.Aspect(), cc)); err != nil {
		return err
	}
	if _, err := w.SpawnCursor(); err != nil {
		return err
	}
	catalog, err := scenario.Populate(w, sc, store)
	if err != nil {
		return err
	}
	log.Info("Scenario loaded", "path", cfg.Scenario, "meshes", len(sc.Meshes), "units", len(sc.Units))

	renderer := render.New(store, render.Options{
		RingSegments: cfg.Ring.Segments,
		RingWidth:    cfg.Ring.Width,
		GridVisible:  cfg.Overlay.GridVisible,
	})
	dbg := debug.New()
	dbg.SetShowFPS(cfg.Overlay.ShowFPS)
	dbg.SetShowMemAlloc(cfg.Overlay.ShowMemAlloc)

	reg := commands.NewRegistry()
	con := &console{
		world:      w,
		catalog:    catalog,
		renderer:   renderer,
		debug:      dbg,
		cfg:        &cfg,
		configPath: *configFlag,
		log:        log,
	}
	con.register(reg)
	term := terminal.New(log, reg)

	frame := &systems.Frame{
		World:    w,
		Renderer: renderer,
		Steering: cfg.SteeringSettings(),
		Camera:   cc,
		Log:      log.Logger,
	}
	in := input.NewState(width, height)
	var poller graphics.Poller
	return graphics.Run(func() error {
		term.Update()
		focused := term.IsOpen()
		if focused {
			in.ReleaseAll()
		}
		for _, ev := range poller.Poll() {
			if focused && input.Captured(ev) {
				continue
			}
			in.Apply(ev)
		}
		if in.CloseRequested() {
			return nil
		}
		if rl.IsWindowResized() {
			width, height := graphics.Size()
			vp = systems.Viewport{Width: width, Height: height}
			cam, err := w.Camera()
			if err != nil {
				return err
			}
			systems.Reproject(cam, vp.Aspect(), cc)
		}
		if err := frame.Run(in, vp); err != nil {
			return err
		}
		term.Draw()
		dbg.Draw(w)
		return nil
	})
}
