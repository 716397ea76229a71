package conf

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the non-secret server configuration. Secrets (the JWT
// signing key) come from the environment, never from the config file.
type Config struct {
	HTTP struct {
		Address     string   `toml:"address"`
		CorsOrigins []string `toml:"cors_origins"`
	} `toml:"http"`
	DynamoDB struct {
		Region     string `toml:"region"`
		UsersTable string `toml:"users_table"`
		FormsTable string `toml:"forms_table"`
		SubmsTable string `toml:"submissions_table"`
	} `toml:"dynamodb"`
}

func Default() Config {
	var c Config
	c.HTTP.Address = ":8080"
	c.HTTP.CorsOrigins = []string{"http://localhost:3000"}
	c.DynamoDB.Region = "eu-central-1"
	c.DynamoDB.UsersTable = "FormpulseUsers"
	c.DynamoDB.FormsTable = "FormpulseForms"
	c.DynamoDB.SubmsTable = "FormpulseSubmissions"
	return c
}

// Load reads the TOML config at path, falling back to defaults when the
// path is empty or the file does not exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// JwtKeyFromEnv reads the JWT signing key from the JWT_KEY env var.
func JwtKeyFromEnv() ([]byte, error) {
	key := os.Getenv("JWT_KEY")
	if key == "" {
		return nil, fmt.Errorf("JWT_KEY is not set")
	}
	return []byte(key), nil
}
