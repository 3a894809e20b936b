package main

import (
	"net/http"
	"time"
)

func (app *application) serve() error {
	server := &http.Server{
		Addr:        app.Config.GetServerAddr(),
		Handler:     app.routes(),
		IdleTimeout: time.Minute,
		ReadTimeout: 10 * time.Second,
		// Streaming MP3 downloads can exceed a typical write timeout, so
		// this stays well above the RapidAPI download deadline.
		WriteTimeout: 15 * time.Minute,
	}

	app.Logger.Sugar().Infof("starting server on %s", server.Addr)

	return server.ListenAndServe()
}
