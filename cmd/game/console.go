package main

import (
	"flag"
	"fmt"

	"topdown/internal/commands"
	"topdown/internal/debug"
	"topdown/internal/engineconfig"
	"topdown/internal/logger"
	"topdown/internal/render"
	"topdown/internal/scenario"
	"topdown/internal/systems"
	"topdown/internal/world"
)

// console holds what the developer console commands act on.
type console struct {
	world      *world.World
	catalog    scenario.Catalog
	renderer   *render.Renderer
	debug      *debug.Debug
	cfg        *engineconfig.Config
	configPath string
	log        *logger.Logger
}

func (c *console) register(reg *commands.Registry) {
	reg.Toggle("grid", func(v bool) {
		c.renderer.SetGridVisible(v)
		c.cfg.Overlay.GridVisible = v
	})
	reg.Toggle("fps", func(v bool) {
		c.debug.SetShowFPS(v)
		c.cfg.Overlay.ShowFPS = v
	})
	reg.Toggle("memalloc", func(v bool) {
		c.debug.SetShowMemAlloc(v)
		c.cfg.Overlay.ShowMemAlloc = v
	})
	reg.Toggle("cursor", c.debug.SetShowCursor)

	fs := flag.NewFlagSet("select", flag.ContinueOnError)
	all := fs.Bool("all", false, "select every unit")
	none := fs.Bool("clear", false, "deselect every unit")
	reg.Register("select", "select --all|--clear", fs, func(args []string) error {
		defer func() { *all, *none = false, false }()
		if *all == *none || len(args) > 0 {
			return commands.ErrUsage
		}
		systems.SelectAll(c.world, *all)
		c.log.Print(fmt.Sprintf("%d selected", c.world.Selected().Size()))
		return nil
	})

	reg.Register("order", "order X Z", nil, func(args []string) error {
		v, err := commands.Floats(args)
		if err != nil || len(v) != 2 {
			return commands.ErrUsage
		}
		n := systems.Order(c.world, v[0], v[1])
		c.log.Info("Move order", "x", v[0], "z", v[1], "units", n)
		c.log.Print(fmt.Sprintf("%d units ordered", n))
		return nil
	})

	reg.Register("spawn", "spawn MESH X Z [SCALE]", nil, func(args []string) error {
		if len(args) < 3 || len(args) > 4 {
			return commands.ErrUsage
		}
		v, err := commands.Floats(args[1:])
		if err != nil {
			return err
		}
		scale := float32(1)
		if len(v) == 3 {
			scale = v[2]
		}
		if _, err := c.catalog.Spawn(c.world, args[0], v[0], v[1], scale); err != nil {
			return err
		}
		c.log.Info("Spawned", "mesh", args[0], "x", v[0], "z", v[1], "scale", scale)
		return nil
	})

	reg.Register("despawn", "despawn", nil, func(args []string) error {
		if len(args) > 0 {
			return commands.ErrUsage
		}
		var n int
		for e := range c.world.Selected().All() {
			if err := c.world.Despawn(e); err != nil {
				return err
			}
			n++
		}
		c.log.Print(fmt.Sprintf("%d despawned", n))
		return nil
	})

	reg.Register("save", "save", nil, func(args []string) error {
		if len(args) > 0 {
			return commands.ErrUsage
		}
		if err := engineconfig.Save(c.configPath, *c.cfg); err != nil {
			return err
		}
		c.log.Print("saved " + c.configPath)
		return nil
	})

	reg.Register("help", "help", nil, func([]string) error {
		for _, name := range reg.Names() {
			u, _ := reg.Usage(name)
			c.log.Print(u)
		}
		return nil
	})
}
