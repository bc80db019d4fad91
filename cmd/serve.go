package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"devfolio/internal/content"
	"devfolio/internal/server"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site over HTTP",
	Long: `The serve command loads the site dataset and starts the web server.
With --watch it also watches the content directory and reloads the dataset
when site.yaml or the article markdown changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		log := newLogger(cfg)

		srv, _, err := buildServer(cfg, log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if serveWatch {
			if cfg.ContentDir == "" {
				log.Warn("--watch has no effect without contentDir; embedded content cannot change")
			} else if err := watchContent(ctx, cfg.ContentDir, srv, log); err != nil {
				return err
			}
		}

		httpSrv := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      srv.Routes(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			log.WithField("addr", httpSrv.Addr).Info("listening")
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Fatal("server error")
			}
		}()

		<-ctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown error")
		}
		log.Info("stopped")
		return nil
	},
}

// watchContent reloads the dataset when files under dir change. Events are
// debounced so an editor save burst triggers one reload; a reload failure
// keeps the last good dataset in place.
func watchContent(ctx context.Context, dir string, srv *server.Server, log logrus.FieldLogger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}

	for _, p := range []string{dir, dir + "/" + content.BlogsDir} {
		if _, statErr := os.Stat(p); os.IsNotExist(statErr) {
			log.WithField("dir", p).Warn("directory not found, not watching")
			continue
		}
		if err := watcher.Add(p); err != nil {
			watcher.Close()
			return fmt.Errorf("watching %s: %w", p, err)
		}
	}

	go func() {
		defer watcher.Close()
		var reloadTimer *time.Timer
		const debounce = 500 * time.Millisecond

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				log.WithFields(logrus.Fields{"file": event.Name, "op": event.Op.String()}).Debug("change detected")
				if reloadTimer != nil {
					reloadTimer.Stop()
				}
				reloadTimer = time.AfterFunc(debounce, func() {
					site, err := content.Load(os.DirFS(dir))
					if err != nil {
						log.WithError(err).Error("content reload failed, keeping previous dataset")
						return
					}
					srv.SetSite(site)
					log.Info("content reloaded")
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Error("watcher error")
			}
		}
	}()
	return nil
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to serve the site on")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload content on change")
	rootCmd.AddCommand(serveCmd)
}
