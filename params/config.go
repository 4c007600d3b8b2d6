package params

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/multierr"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/status-im/wc-signer/logutils"
)

const (
	// DefaultSessionRequestExpiry is how long an unanswered sign request stays pending, in seconds.
	DefaultSessionRequestExpiry = 5 * 60

	DefaultHTTPHost    = "localhost"
	DefaultHTTPPort    = 8645
	DefaultMetricsPort = 9305
	DefaultLogLevel    = "INFO"
)

// ----------
// RelayConfig
// ----------

// RelayConfig stores configuration of the JSON-RPC endpoint that delivers
// responses back to the requesting peer.
type RelayConfig struct {
	// Enabled flag specifies whether responses are sent to the relay.
	// When disabled they are written to stdout.
	Enabled bool

	// URL of the relay JSON-RPC endpoint.
	URL string `validate:"required"`
}

// Validate validates the RelayConfig struct and returns an error if inconsistent values are found
func (c *RelayConfig) Validate(validate *validator.Validate) error {
	if !c.Enabled {
		return nil
	}

	if err := validate.Struct(c); err != nil {
		return err
	}

	if _, err := url.ParseRequestURI(c.URL); err != nil {
		return fmt.Errorf("RelayConfig.URL '%s' is invalid: %v", c.URL, err.Error())
	}

	return nil
}

// ----------
// Config
// ----------

// Config stores configuration options of the signer service.
type Config struct {
	// Name of the wallet instance, reported in logs.
	Name string `validate:"excludes=/"`

	// HTTPEnabled specifies whether the JSON-RPC API is served over HTTP.
	HTTPEnabled bool

	// HTTPHost is the host interface on which to start the HTTP RPC server.
	HTTPHost string

	// HTTPPort is the TCP port number of the HTTP RPC server.
	HTTPPort int `validate:"omitempty,min=1,max=65535"`

	// HTTPVirtualHosts is the list of virtual hostnames which are allowed on incoming requests.
	HTTPVirtualHosts []string

	// HTTPCors is the Cross-Origin Resource Sharing header to send to requesting clients.
	HTTPCors []string

	// MetricsEnabled starts the prometheus endpoint.
	MetricsEnabled bool

	MetricsPort int `validate:"omitempty,min=1,max=65535"`

	// LogEnabled enables the logger
	LogEnabled bool `json:"LogEnabled"`

	// LogFile is filename where exposed logs get written to
	LogFile string

	// LogLevel defines minimum log level. Valid names are "ERROR", "WARN", "INFO", "DEBUG", and "TRACE".
	LogLevel string `validate:"eq=ERROR|eq=WARN|eq=INFO|eq=DEBUG|eq=TRACE"`

	// LogMaxSize is the size in megabytes after which the log file is rotated.
	LogMaxSize int

	LogMaxBackups int

	LogCompressRotated bool

	// LogToStderr defines whether logged info should also be output to os.Stderr
	LogToStderr bool

	// SessionRequestExpiry is the time in seconds a sign request waits for a decision.
	SessionRequestExpiry uint64 `validate:"min=1"`

	// RelayConfig describes where responses are delivered.
	RelayConfig RelayConfig `json:"RelayConfig," validate:"structonly"`

	// Networks overrides the built-in chain table when not empty.
	Networks []Network `validate:"dive"`
}

// NewConfig creates a configuration with defaults.
func NewConfig() *Config {
	return &Config{
		HTTPHost:             DefaultHTTPHost,
		HTTPPort:             DefaultHTTPPort,
		HTTPVirtualHosts:     []string{"localhost"},
		MetricsPort:          DefaultMetricsPort,
		LogEnabled:           true,
		LogLevel:             DefaultLogLevel,
		LogMaxSize:           100,
		LogMaxBackups:        3,
		LogToStderr:          true,
		SessionRequestExpiry: DefaultSessionRequestExpiry,
		Networks:             DefaultNetworks(),
	}
}

// NewConfigFromJSON parses incoming JSON and returned it as Config
func NewConfigFromJSON(configJSON string) (*Config, error) {
	config := NewConfig()
	config.Networks = nil
	if err := loadConfigFromJSON(configJSON, config); err != nil {
		return nil, err
	}
	if len(config.Networks) == 0 {
		config.Networks = DefaultNetworks()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigFromFile reads a JSON config file on top of the defaults.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfigFromJSON(string(data))
}

func loadConfigFromJSON(configJSON string, config *Config) error {
	decoder := json.NewDecoder(strings.NewReader(configJSON))
	decoder.DisallowUnknownFields()
	// override default configuration with values by JSON input
	return decoder.Decode(config)
}

// NewValidator returns the validator used for configuration structs.
func NewValidator() *validator.Validate {
	return validator.New()
}

// Validate checks if Config fields have valid values.
//
// A single error for a struct:
//
//	type TestStruct struct {
//	    TestField string `validate:"required"`
//	}
//
// has the following format:
//
//	Key: 'TestStruct.TestField' Error:Field validation for 'TestField' failed on the 'required' tag
func (c *Config) Validate() error {
	validate := NewValidator()

	if err := validate.Struct(c); err != nil {
		return err
	}

	err := c.RelayConfig.Validate(validate)

	seen := make(map[uint64]struct{}, len(c.Networks))
	for _, n := range c.Networks {
		if _, ok := seen[n.ChainID]; ok {
			err = multierr.Append(err, fmt.Errorf("network with chain id %d is configured twice", n.ChainID))
		}
		seen[n.ChainID] = struct{}{}
	}

	return err
}

// SessionRequestTTL returns SessionRequestExpiry as a duration.
func (c *Config) SessionRequestTTL() time.Duration {
	return time.Duration(c.SessionRequestExpiry) * time.Second
}

// HTTPEndpoint returns the listen address of the HTTP RPC server.
func (c *Config) HTTPEndpoint() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

// LogSettings maps the log fields onto logutils.LogSettings.
func (c *Config) LogSettings() logutils.LogSettings {
	return logutils.LogSettings{
		Enabled:         c.LogEnabled,
		Level:           c.LogLevel,
		File:            c.LogFile,
		MaxSize:         c.LogMaxSize,
		MaxBackups:      c.LogMaxBackups,
		CompressRotated: c.LogCompressRotated,
		ConsoleOutput:   c.LogToStderr,
	}
}

func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "    ")
	return string(data)
}
