package main

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"httpmsg/internal/config"
	"httpmsg/internal/middleware"
	"httpmsg/internal/mime"
	"httpmsg/internal/random"
	"httpmsg/message"
	"httpmsg/server"
	"httpmsg/status"
)

func main() {
	log.SetOutput(os.Stdout)

	cfg, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel())
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.UpstreamAddr() != "" {
		prx := server.NewProxy(cfg)
		prx.UseRequestMiddleware(middleware.NewRequestID(random.New()))
		prx.UseResponseMiddleware(middleware.NewServerTag(cfg.ServerName()))
		go func() {
			if err := prx.Start(); err != nil {
				log.Fatalf("Proxy stopped: %s", err)
			}
		}()
	}

	app := server.New(cfg)
	app.UseRequestMiddleware(middleware.NewRequestID(random.New()))
	app.UseResponseMiddleware(middleware.NewServerTag(cfg.ServerName()))
	app.UseResponseMiddleware(middleware.NewDate(time.Now))

	registerRoutes(app)

	if err := app.Start(); err != nil {
		log.Fatalf("Server stopped: %s", err)
	}
}

func registerRoutes(app server.Server) {
	app.Router().OnGet("/", func(req *message.Request, resp *message.Response) {
		resp.Header().Set("Content-Type", mime.ByExtension("html"))
		resp.AddBody([]byte("<html><body><h1>httpmsg</h1></body></html>"))
	})

	app.Router().OnGet("/ping", func(req *message.Request, resp *message.Response) {
		resp.Header().Set("Content-Type", mime.ByExtension("txt"))
		resp.AddBody([]byte("pong"))
	})

	app.Router().OnGet("/greet", func(req *message.Request, resp *message.Response) {
		name := req.QueryValue("name")
		if name == "" {
			name = "stranger"
		}
		resp.Header().Set("Content-Type", mime.ByExtension("txt"))
		resp.AddBody([]byte("hello " + name))
	})

	app.Router().OnPost("/echo", func(req *message.Request, resp *message.Response) {
		msg := req.PostValue("message")
		if msg == "" {
			resp.SetStatusCode(status.BadRequest)
			return
		}
		resp.Header().Set("Content-Type", mime.ByExtension("txt"))
		resp.AddBody([]byte(msg))
	})
}
