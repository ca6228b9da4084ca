package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/Astemirdum/ureserve/pkg/kafka"
	"github.com/Astemirdum/ureserve/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"GATEWAY_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"GATEWAY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"15s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// RemoteHTTPServer is the UReserve API every reservation is persisted to.
type RemoteHTTPServer struct {
	Host     string        `envconfig:"REMOTE_HTTP_HOST" default:"localhost"`
	Port     string        `envconfig:"REMOTE_HTTP_PORT" default:"8081"`
	BasePath string        `envconfig:"REMOTE_BASE_PATH" default:"/api"`
	Timeout  time.Duration `envconfig:"REMOTE_TIMEOUT" default:"1m"`
}

func (r RemoteHTTPServer) BaseURL() string {
	return fmt.Sprintf("http://%s%s", net.JoinHostPort(r.Host, r.Port), r.BasePath)
}

type Session struct {
	TTL time.Duration `envconfig:"SESSION_TTL"`
}

type Config struct {
	Server           HTTPServer `yaml:"server"`
	Kafka            kafka.Config
	RemoteHTTPServer RemoteHTTPServer
	Session          Session
	Log              logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

// Load applies the options and then the environment, without the process-wide cache.
func Load(ops ...Option) (Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, err
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = time.Minute
	}
	if config.Session.TTL == 0 {
		config.Session.TTL = 30 * time.Minute
	}
	return config, nil
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
