package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/routerlogin/routerlogin/internal/config"
	"github.com/routerlogin/routerlogin/internal/health"
	"github.com/routerlogin/routerlogin/internal/httplog"
	"github.com/routerlogin/routerlogin/internal/ipinfo"
	"github.com/routerlogin/routerlogin/internal/loader"
	"github.com/routerlogin/routerlogin/internal/models"
	"github.com/routerlogin/routerlogin/internal/noop"
	"github.com/routerlogin/routerlogin/internal/render"
	"github.com/routerlogin/routerlogin/internal/server"
	"github.com/routerlogin/routerlogin/internal/shoutrrr"
	"github.com/routerlogin/routerlogin/internal/theme"
	"golang.org/x/sync/errgroup"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo, time.Now)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo)
			return nil
		case "healthcheck":
			// Query the long running instance of the program, for
			// example from a container orchestrator health check.
			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, *healthSettings.ServerAddress)
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	baseClient := &http.Client{Timeout: config.Client.Timeout}
	defer baseClient.CloseIdleConnections()
	client := httplog.NewClient(baseClient, logger.New(log.SetComponent("http client")))

	if *config.IPInfo.Enabled {
		err = health.CheckHTTP(ctx, client, config.IPInfo.URL)
		if err != nil {
			logger.Warn("IP lookup endpoint " + config.IPInfo.URL + ": " + err.Error())
		}
	}

	fetcher := loader.NewFetcher(config.Data.Source, client)
	collectionLoader := loader.New(fetcher, config.Data.RoutersPath, config.Data.ArticlesPath)
	checkCollections(ctx, collectionLoader, logger, shoutrrrClient)

	healthLogger := logger.New(log.SetComponent("health server"))
	isHealthy := health.MakeIsHealthy(collectionLoader, healthLogger)
	healthServer, err := health.NewServer(*config.Health.ServerAddress, healthLogger, isHealthy)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	server, err := createServer(config, collectionLoader, client, logger, timeNow)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{healthServer, server},
		ServicesStop:  []goservices.Service{server, healthServer},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	shoutrrrClient.Notify("Launched " + buildInfo.VersionString())

	select {
	case <-ctx.Done():
	case err = <-runError:
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "routerlogin",
		Repository: "routerlogin",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

// checkCollections loads both collections once at startup. A failure
// is only a warning, since every page view loads the collections again.
func checkCollections(ctx context.Context, collectionLoader *loader.Loader,
	logger log.LeveledLogger, shoutrrrClient *shoutrrr.Client) {
	var routersCount, articlesCount int
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		routers, err := collectionLoader.Routers(groupCtx)
		routersCount = len(routers)
		return err
	})
	group.Go(func() error {
		articles, err := collectionLoader.Articles(groupCtx)
		articlesCount = len(articles)
		return err
	})

	err := group.Wait()
	if err != nil {
		message := "loading collections: " + err.Error()
		logger.Warn(message)
		shoutrrrClient.Notify(message)
		return
	}

	logger.Info("Found " + strconv.Itoa(routersCount) + " routers and " +
		strconv.Itoa(articlesCount) + " articles")
}

//nolint:ireturn
func createServer(config config.Config, collectionLoader server.Loader,
	client *http.Client, logger log.LoggerInterface, timeNow func() time.Time) (
	service goservices.Service, err error) {
	serverLogger := logger.New(log.SetComponent("http server"))
	if !*config.Server.Enabled {
		return noop.New("http server", serverLogger), nil
	}

	renderer, err := render.New(config.Server.RootPath())
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	sessionSecret := []byte(*config.Theme.SessionSecret)
	if len(sessionSecret) == 0 {
		const secretLength = 32
		sessionSecret = make([]byte, secretLength)
		_, err = rand.Read(sessionSecret)
		if err != nil {
			return nil, fmt.Errorf("generating session secret: %w", err)
		}
	}

	defaultTheme, err := theme.Parse(config.Theme.Default)
	if err != nil {
		return nil, fmt.Errorf("default theme: %w", err)
	}

	settings := server.Settings{
		Address:            config.Server.ListeningAddress,
		RootPath:           config.Server.RootPath(),
		StaticDir:          config.Server.StaticDir,
		CORSAllowedOrigins: config.Server.CORSAllowedOrigins,
		DefaultTheme:       defaultTheme,
		SessionStore:       theme.NewSessionStore(sessionSecret),
	}
	if *config.IPInfo.Enabled {
		lookuper := ipinfo.New(client, config.IPInfo.URL, *config.IPInfo.Token)
		ipLogger := logger.New(log.SetComponent("ip lookup"))
		settings.IPWidget = ipinfo.NewWidget(lookuper, renderer, ipLogger)
	}

	return server.New(settings, collectionLoader, renderer, serverLogger, timeNow)
}
