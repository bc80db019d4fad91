package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"devfolio/internal/articles"
	"devfolio/internal/config"
	"devfolio/internal/content"
	"devfolio/internal/server"
)

var cfgFile string
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "devfolio",
	Short: "Personal portfolio and blog server",
	Long: `devfolio serves a personal portfolio and technical blog: profile,
projects and markdown-backed articles, rendered server-side from a
hand-authored dataset. It can also export the whole site as static HTML.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appConfig, err = config.Load(cfgFile)
		return err
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func newLogger(cfg config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// contentFS picks the content source: a directory on disk when configured,
// otherwise the dataset embedded in the binary.
func contentFS(cfg config.Config) fs.FS {
	if cfg.ContentDir != "" {
		return os.DirFS(cfg.ContentDir)
	}
	return content.Embedded
}

// buildServer loads the dataset and wires the article loader and server.
func buildServer(cfg config.Config, log *logrus.Logger) (*server.Server, fs.FS, error) {
	fsys := contentFS(cfg)
	site, err := content.Load(fsys)
	if err != nil {
		return nil, nil, fmt.Errorf("loading site content: %w", err)
	}

	var fetcher articles.Fetcher
	if cfg.ArticlesBaseURL != "" {
		fetcher = articles.NewHTTPFetcher(cfg.ArticlesBaseURL)
	} else {
		fetcher = &articles.FSFetcher{FS: fsys, Dir: content.BlogsDir}
	}
	loader := articles.NewLoader(fetcher, log)

	return server.New(cfg, site, fsys, loader, log), fsys, nil
}
