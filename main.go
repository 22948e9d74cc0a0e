package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/9seconds/selfip/selflib"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

const shutdownTimeout = 5 * time.Second

var version = "dev"

var (
	app = kingpin.New(
		"selfip",
		"Detect public IP address of this host using a chain of lookup services.")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("SELFIP_DEBUG").
		Bool()
	configFile = app.Flag("config", "Path to the config.").
			Short('c').
			Envar("SELFIP_CONFIG").
			ExistingFile()

	ipCommand = app.Command("ip", "Print public IP address.").Default()

	headersCommand = app.Command("headers", "Print HTTP headers with X-Real-IP as JSON.")
	headersExtra   = headersCommand.Flag("header", "Existing header, 'Name: Value'.").
			Short('H').
			Strings()

	serveCommand = app.Command("serve", "Serve public IP address over HTTP.")
)

func main() {
	app.Version(version)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	appLog, resolveLog := newLogger(*debug)

	conf, err := readConfig(*configFile)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Cannot read config")
	}

	resolver, err := makeResolver(conf, resolveLog)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Cannot create resolver")
	}

	appLog.Debug().Strs("providers", resolver.Providers()).Msg("Resolver is ready")

	ctx, cancel := makeRootContext()
	defer cancel()

	switch command {
	case ipCommand.FullCommand():
		err = runIP(ctx, resolver)
	case headersCommand.FullCommand():
		err = runHeaders(ctx, resolver)
	case serveCommand.FullCommand():
		err = runServe(ctx, conf, resolver, appLog)
	}

	if err != nil {
		appLog.Error().Err(err).Msg("Command has failed")
		os.Exit(1)
	}
}

func runIP(ctx context.Context, resolver *selflib.Resolver) error {
	ip, ok := resolver.GetUserIP(ctx)
	if !ok {
		return errors.New("cannot detect public ip address")
	}

	fmt.Println(ip)

	return nil
}

func runHeaders(ctx context.Context, resolver *selflib.Resolver) error {
	headers, err := makeHeaders(ctx, resolver, *headersExtra)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)

	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	return encoder.Encode(headers)
}

func runServe(ctx context.Context, conf *config, resolver *selflib.Resolver, log zerolog.Logger) error {
	router := chi.NewRouter()

	if conf.BasicAuth.Enabled() {
		router.Use(basicAuth(conf.BasicAuth))
	}

	router.Mount("/", selflib.NewHTTPHandler(resolver))

	srv := &http.Server{
		Addr:    conf.GetListen(),
		Handler: router,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		srv.Shutdown(shutdownCtx) // nolint: errcheck
	}()

	log.Info().Str("listen", conf.GetListen()).Msg("Start HTTP server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server has failed: %w", err)
	}

	return nil
}
