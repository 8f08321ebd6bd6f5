// Command platformstub serves the seeded course platform from memory so the
// recommendation service can be run locally without the real backend.
package main

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/actuallystonmai/course-recommendation-service/internal/config"
	"github.com/actuallystonmai/course-recommendation-service/internal/logging"
	"github.com/actuallystonmai/course-recommendation-service/seeds"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.Component(logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}), "platformstub")

	catalog := seeds.Default()
	addr := fmt.Sprintf(":%d", cfg.PlatformStubPort)
	logger.Info().
		Str("addr", addr).
		Int("courses", len(catalog.Courses)).
		Int("users", len(catalog.Users)).
		Msg("platform stub running")

	if err := http.ListenAndServe(addr, seeds.NewPlatform(catalog)); err != nil {
		logger.Fatal().Err(err).Msg("platform stub failed")
	}
}
