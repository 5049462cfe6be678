package main

import (
	"context"

	"deedles.dev/imposter/internal/config"
	"deedles.dev/imposter/internal/sigbridge"
	"deedles.dev/imposter/notes"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/sirupsen/logrus"
)

// AppID is the application's ID. Instances don't share it, so more
// than one can run at a time.
const AppID = "dev.deedles.imposter"

type Server struct {
	Config config.Config

	app     *gtk.Application
	surface *Surface
	overlay *notes.Overlay
	bridge  sigbridge.Bridge

	status int
}

// Run runs the application until the surface is destroyed and returns
// the process's exit status.
func (server *Server) Run() int {
	stop := server.bridge.Start(context.Background())
	defer stop()

	server.app = gtk.NewApplication(AppID, gio.ApplicationNonUnique)
	server.app.ConnectActivate(server.onActivate)

	if status := server.app.Run([]string{Name}); status != 0 {
		logrus.WithField("status", status).Error("application failed")
		return 1
	}
	return server.status
}

func (server *Server) onActivate() {
	if server.surface != nil {
		return
	}

	if !layerShellSupported() {
		logrus.Error("compositor does not support the layer shell protocol")
		server.status = 1
		return
	}

	loadWindowStyle()
	server.surface = newSurface(server.app, server.Config.Output)
	server.overlay = notes.New(server.Config, server.surface, parsePen(server.Config.Pen))

	server.surface.Present()
	server.overlay.Start()

	coreglib.TimeoutAdd(notes.TickInterval, server.onTick)

	logrus.WithFields(logrus.Fields{
		"num":    server.Config.Num,
		"width":  server.Config.Width,
		"height": server.Config.Height,
	}).Info("started")
}

func (server *Server) onTick() bool {
	if server.bridge.Apply(server.overlay) {
		return false
	}
	server.overlay.Tick()
	return true
}
