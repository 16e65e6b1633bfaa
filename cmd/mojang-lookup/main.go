package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	_ "golang.org/x/crypto/x509roots/fallback"

	"github.com/simplexservers/mojangapi"
	"github.com/simplexservers/mojangapi/internal/config"
	"github.com/simplexservers/mojangapi/internal/logging"
	"github.com/simplexservers/mojangapi/internal/reporting"
	"github.com/simplexservers/mojangapi/internal/strutils"
)

func main() {
	instanceID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	if len(os.Args) < 2 || os.Args[1] == "" {
		fail("Usage: mojang-lookup <username|uuid>")
	}
	target := os.Args[1]

	conf, err := config.FromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", conf.NonSensitiveString())

	flush, err := reporting.InitSentryOrMock(conf.SentryDSN())
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()

	httpClient := &http.Client{
		Timeout:   conf.Timeout(),
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	client := mojangapi.NewClient(&mojangapi.Config{
		UserAgent:  conf.UserAgent(),
		HTTPClient: httpClient,
	})

	ctx := logging.AddToContext(context.Background(), logger)
	ctx = reporting.AddHubToContext(ctx)
	ctx = reporting.AddTagsToContext(ctx, map[string]string{"target": target})

	if strutils.IsValidUsername(target) {
		id, err := client.UUIDForUsername(ctx, target)
		if err != nil {
			fail("Failed to look up uuid", "username", target, "error", err.Error())
		}
		fmt.Println(id.String())
		return
	}

	id, err := uuid.Parse(target)
	if err != nil {
		fail("Target is neither a valid username nor a uuid", "target", target)
	}

	username, err := client.UsernameForUUID(ctx, id)
	if err != nil {
		fail("Failed to look up username", "uuid", id.String(), "error", err.Error())
	}
	fmt.Println(username)
}
