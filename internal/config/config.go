package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	Database  Database  `envPrefix:"DB_"`
	Redis     Redis     `envPrefix:"REDIS_"`
	Payment   Payment   `envPrefix:"PAYMENT_"`
	Stripe    Stripe    `envPrefix:"STRIPE_"`
	Braintree Braintree `envPrefix:"BRAINTREE_"`
	Checkout  Checkout  `envPrefix:"CHECKOUT_"`
	Auth      Auth      `envPrefix:"AUTH_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Database struct {
	// Driver is "mysql" or "sqlite".
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	URL    string `env:"URL" envDefault:"storefront.db"`
}

type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type Payment struct {
	// Provider selects the gateway implementation: "stripe" or "braintree".
	Provider string `env:"PROVIDER" envDefault:"stripe"`
	Currency string `env:"CURRENCY" envDefault:"usd"`
}

type Stripe struct {
	SecretKey string `env:"SECRET_KEY"`
}

type Braintree struct {
	Environment string `env:"ENVIRONMENT" envDefault:"sandbox"`
	MerchantID  string `env:"MERCHANT_ID"`
	PublicKey   string `env:"PUBLIC_KEY"`
	PrivateKey  string `env:"PRIVATE_KEY"`
}

type Checkout struct {
	TaxRate          float64 `env:"TAX_RATE" envDefault:"0.08"`
	ShippingFee      float64 `env:"SHIPPING_FEE" envDefault:"9.99"`
	FreeShippingOver float64 `env:"FREE_SHIPPING_OVER" envDefault:"50.00"`
	SeedProducts     bool    `env:"SEED_PRODUCTS" envDefault:"false"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}

type RateLimit struct {
	MaxRequests int `env:"MAX_REQUESTS" envDefault:"100"`
	// WindowSeconds is the fixed counting window per client address.
	WindowSeconds int `env:"WINDOW_SECONDS" envDefault:"900"`
}
