package config

import "github.com/dmitrijs2005/todokeeper/internal/flagx"

// parseEnv overlays settings that deployments usually inject through the
// environment. JWT_SECRET is the canonical source of the signing secret.
func parseEnv(config *Config) {
	config.EndpointAddrGRPC = flagx.EnvString("GRPC_ADDR", config.EndpointAddrGRPC)
	config.DatabaseDSN = flagx.EnvString("DATABASE_URL", config.DatabaseDSN)
	config.SecretKey = flagx.EnvString("JWT_SECRET", config.SecretKey)
	config.MetricsAddr = flagx.EnvString("METRICS_ADDR", config.MetricsAddr)
}
