package config

import "github.com/dmitrijs2005/todokeeper/internal/flagx"

func parseEnv(cfg *Config) {
	cfg.ServerEndpointAddr = flagx.EnvString("TODOKEEPER_ADDR", cfg.ServerEndpointAddr)
	cfg.TokenFile = flagx.EnvString("TODOKEEPER_TOKEN_FILE", cfg.TokenFile)
}
