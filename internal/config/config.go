package config

import "time"

type Config interface {
	HTTPPort() string

	ProxyPort() string
	UpstreamAddr() string

	HeaderFieldLimit() int
	BufferSize() int
	ReadTimeout() time.Duration

	ServerName() string
	LogLevel() string
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) HTTPPort() string           { return c.httpPort }
func (c *config) ProxyPort() string          { return c.proxyPort }
func (c *config) UpstreamAddr() string       { return c.upstreamAddr }
func (c *config) HeaderFieldLimit() int      { return c.headerFieldLimit }
func (c *config) BufferSize() int            { return c.bufferSize }
func (c *config) ReadTimeout() time.Duration { return c.readTimeout }
func (c *config) ServerName() string         { return c.serverName }
func (c *config) LogLevel() string           { return c.logLevel }
