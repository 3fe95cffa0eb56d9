package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey   = "API_PORT"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"

	rpcURLEnvKey        = "CHAIN_RPC_URL"
	tokenContractEnvKey = "TOKEN_CONTRACT"
	explorerEnvKey      = "EXPLORER_TX_URL"
	natsURLEnvKey       = "NATS_URL"
	logLevelEnvKey      = "LOG_LEVEL"

	emailPublicKeyEnvKey  = "EMAILJS_PUBLIC_KEY"
	emailPrivateKeyEnvKey = "EMAILJS_PRIVATE_KEY"
	emailServiceIDEnvKey  = "EMAILJS_SERVICE_ID"
	emailTemplateIDEnvKey = "EMAILJS_TEMPLATE_ID"
	emailAPIURLEnvKey     = "EMAILJS_API_URL"
)

const (
	defaultRPCURL          = "https://mainnet.base.org"
	defaultTokenContract   = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
	defaultExplorerTxURL   = "https://basescan.org/tx/"
	defaultLogLevel        = "info"
	defaultEmailPublicKey  = "aXX5DD5himEFlgADr"
	defaultEmailServiceID  = "service_1xpxki8"
	defaultEmailTemplateID = "template_i9mvzoi"
	defaultEmailAPIURL     = "https://api.emailjs.com"
)

type Email struct {
	PublicKey  string
	PrivateKey string
	ServiceID  string
	TemplateID string
	APIURL     string
}

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	RPCURL          string
	TokenContract   string
	ExplorerTxURL   string
	NatsURL         string
	LogLevel        string
	Email           Email
}

// NewApp reads the application configuration from the environment.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment take precedence over it.
func NewApp() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		RPCURL:          lookupOrDefault(rpcURLEnvKey, defaultRPCURL),
		TokenContract:   lookupOrDefault(tokenContractEnvKey, defaultTokenContract),
		ExplorerTxURL:   lookupOrDefault(explorerEnvKey, defaultExplorerTxURL),
		NatsURL:         lookupOrDefault(natsURLEnvKey, ""),
		LogLevel:        lookupOrDefault(logLevelEnvKey, defaultLogLevel),
		Email: Email{
			PublicKey:  lookupOrDefault(emailPublicKeyEnvKey, defaultEmailPublicKey),
			PrivateKey: lookupOrDefault(emailPrivateKeyEnvKey, ""),
			ServiceID:  lookupOrDefault(emailServiceIDEnvKey, defaultEmailServiceID),
			TemplateID: lookupOrDefault(emailTemplateIDEnvKey, defaultEmailTemplateID),
			APIURL:     lookupOrDefault(emailAPIURLEnvKey, defaultEmailAPIURL),
		},
	}, nil
}

func lookupOrDefault(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}
