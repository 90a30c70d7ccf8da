// Command token mints a staff access token, e.g.
//
//	go run ./cmd/token frontdesk-01 "Ploy" frontdesk
package main

import (
	"fmt"
	"os"
	"slices"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 4
)

var roles = []string{constant.RoleManager, constant.RoleFrontDesk, constant.RoleHousekeeping}

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Usage: token <user-id> <name> <manager|frontdesk|housekeeping>")
	}

	userID, name, role := os.Args[1], os.Args[2], os.Args[3]
	if !slices.Contains(roles, role) {
		log.Fatal().Str("role", role).Msg("Unknown role")
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if cfg.JWT.AccessSecret == "" {
		log.Fatal().Msg("JWT_ACCESS_SECRET is not set")
	}

	token, expiresAt, err := jwt.New(cfg).GenerateAccessToken(userID, name, role)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate access token")
	}

	log.Info().Str("user_id", userID).Str("role", role).Time("expires_at", expiresAt).Msg("Access token generated")

	fmt.Println(token) //nolint:forbidigo
}
