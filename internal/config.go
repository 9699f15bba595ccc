package internal

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type RunEnv string

const (
	Development RunEnv = "development"
	Production  RunEnv = "production"
)

type Config struct {
	Env           RunEnv        `envconfig:"ENV" default:"development"`
	EchoAddr      string        `envconfig:"ECHO_ADDR" default:":8080"`
	SparqlUrl     string        `envconfig:"SPARQL_URL" default:"http://knowledgebase:8890/sparql"`
	SparqlTimeout time.Duration `envconfig:"SPARQL_TIMEOUT" default:"40s"`
	EntityMapPath string        `envconfig:"ENTITY_MAP_PATH" default:"data/entity_map.tsv"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
