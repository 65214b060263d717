package main

import (
	"io"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"ytdlp-direct/config"
	"ytdlp-direct/extract"
	"ytdlp-direct/handlers"
	"ytdlp-direct/ytdlp"
)

// app holds everything built from the environment at startup.
type app struct {
	cfg       config.Config
	log       *logrus.Logger
	extractor handlers.Extractor
	versions  handlers.VersionReporter
}

type appBuilder func(logOut io.Writer) (*app, error)

func newApp(logOut io.Writer) (*app, error) {
	// a missing .env is normal in production
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := newLogger(logOut, cfg.LogLevel)
	log.Infof("GitSHA: %s", config.GetGitSHA())
	log.Infof("BuildDate: %s", config.GetBuildDate())
	if cfg.SessionKeySource == "generated" {
		log.Warn("YTDLP_DIRECT_SESSION_AUTH_KEY not set, using a random key; flash messages won't survive a restart")
	}

	vocab, err := extract.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		return nil, err
	}

	var opts []ytdlp.Option
	if cfg.CookiesFile != "" {
		opts = append(opts, ytdlp.WithCookies(cfg.CookiesFile))
	}
	client := ytdlp.NewClient(ytdlp.NewCommandRunner(cfg.YtdlpPath, log), opts...)

	return &app{
		cfg:       cfg,
		log:       log,
		extractor: extract.NewGateway(client, vocab, cfg.ExtractTimeout, log),
		versions:  client,
	}, nil
}
