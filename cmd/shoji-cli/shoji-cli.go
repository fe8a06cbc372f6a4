package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shojikit/shoji-client/pkg/shoji"
	"github.com/shojikit/shoji-client/pkg/shoji/client"
)

func main() {

	serviceName := "shoji-cli"

	logger := log.With().Str("service", strings.ToLower(serviceName)).Logger()

	configPath := flag.String("config", env("SHOJI_CONFIG", "shoji.yaml"), "path to the profiles configuration file")
	profileName := flag.String("profile", env("SHOJI_PROFILE", ""), "name of the profile to use")
	flag.Parse()

	if flag.NArg() < 1 {
		logger.Fatal().Msg("expected a resource url as argument")
	}
	resourceURL := flag.Arg(0)

	cfgFile, err := os.Open(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open configuration file")
	}
	defer cfgFile.Close()

	cfg, err := LoadConfiguration(cfgFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	profile, err := cfg.Profile(*profileName)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to select profile")
	}

	session := client.New(
		client.Token(profile.Token),
		client.Debug(boolToEnable(profile.Debug)),
	)

	ctx := context.Background()

	if !strings.HasPrefix(resourceURL, "http") {
		resourceURL = strings.TrimSuffix(profile.URL, "/") + "/" + strings.TrimPrefix(resourceURL, "/")
	}

	response, err := session.Get(ctx, resourceURL, nil)
	if err != nil {
		logger.Fatal().Err(err).Str("url", resourceURL).Msg("failed to fetch resource")
	}

	printResource(logger, response.Payload())
}

func printResource(logger zerolog.Logger, payload any) {
	switch doc := payload.(type) {
	case *shoji.Catalog:
		logger.Info().Str("self", doc.Self()).Int("size", len(doc.Index())).Msg("catalog")
		for entityURL, tuple := range doc.Index() {
			name := ""
			if v, ok := tuple.Get("name"); ok {
				name, _ = v.(string)
			}
			logger.Info().Str("url", entityURL).Str("name", name).Msg("member")
		}
	case *shoji.Entity:
		logger.Info().Str("self", doc.Self()).Msg("entity")
		for _, key := range doc.Body().Members().Keys() {
			value, _ := doc.Body().Get(key)
			logger.Info().Str("attribute", key).Any("value", value).Msg("body")
		}
	case *shoji.View:
		logger.Info().Str("self", doc.Self()).Msg("view")
		for _, key := range doc.Members().Keys() {
			logger.Info().Str("member", key).Msg("view content")
		}
	default:
		logger.Info().Any("payload", payload).Msg("resource")
	}
}

func env(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}

func boolToEnable(enabled bool) string {
	if enabled {
		return "true"
	}
	return "false"
}
