package service

type Config struct {
	DatabaseUri             string  `envconfig:"DATABASE_URI" required:"true"`
	DatabaseMaxConns        int     `envconfig:"DATABASE_MAX_CONNS" default:"10"`
	DatabaseMaxIdleConns    int     `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	DatabaseConnMaxLifetime int     `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"1800"` // 30 minutes
	SentryDSN               string  `envconfig:"SENTRY_DSN"`
	SentryTracesSampleRate  float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE"`
	LogFilePath             string  `envconfig:"LOG_FILE_PATH"`
	JWTSecret               []byte  `envconfig:"JWT_SECRET" required:"true"`
	JWTAccessTokenExpiry    int     `envconfig:"JWT_ACCESS_EXPIRY" default:"172800"` // in seconds, default 2 days
	AdminToken              string  `envconfig:"ADMIN_TOKEN"`
	AdminIdentity           string  `envconfig:"ADMIN_IDENTITY" required:"true"`
	TreasuryAddress         string  `envconfig:"TREASURY_ADDRESS" required:"true"`
	RoyaltyBasisPoints      int64   `envconfig:"ROYALTY_BASIS_POINTS" default:"500"` // 5%, per-registry constant
	Host                    string  `envconfig:"HOST" default:"localhost:3000"`
	Port                    int     `envconfig:"PORT" default:"3000"`
	DefaultRateLimit        int     `envconfig:"DEFAULT_RATE_LIMIT" default:"10"`
	StrictRateLimit         int     `envconfig:"STRICT_RATE_LIMIT" default:"10"`
	BurstRateLimit          int     `envconfig:"BURST_RATE_LIMIT" default:"1"`
	EnablePrometheus        bool    `envconfig:"ENABLE_PROMETHEUS" default:"false"`
	PrometheusPort          int     `envconfig:"PROMETHEUS_PORT" default:"9092"`
	WebhookUrl              string  `envconfig:"WEBHOOK_URL"`
	RabbitMQUri             string  `envconfig:"RABBITMQ_URI"`
	RabbitMQEventExchange   string  `envconfig:"RABBITMQ_EVENT_EXCHANGE" default:"metalbridge_events"`
	Branding                BrandingConfig
}

type BrandingConfig struct {
	Name   string `envconfig:"BRANDING_NAME" default:"ScrollVerse Precious Metal Bridge"`
	Symbol string `envconfig:"BRANDING_SYMBOL" default:"SPMB"`
}
