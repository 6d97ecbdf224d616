package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env-default:"prod"`
	HTTPServer `yaml:"http_server"`
	DBUser     string `yaml:"db_user" env-required:"true"`
	DBPassword string `yaml:"db_password" env-required:"false"`
	DBHost     string `yaml:"db_host" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env-default:"3306"`
	DBName     string `yaml:"db_name" env-required:"true"`
	ParseTime  bool   `yaml:"parse_time" env-default:"true"`

	AdminLogin string `yaml:"admin_login"`
	AdminPass  string `yaml:"admin_pass"`

	Pricing Pricing `yaml:"pricing"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

// Pricing holds account-level defaults consumed by the calculation engine.
// Margin thresholds live here so the bands are configuration, not constants.
type Pricing struct {
	LaborRate        float64 `yaml:"labor_rate" env-default:"38"`
	MinBillableHours float64 `yaml:"min_billable_hours" env-default:"0.5"`
	MarkupPercent    float64 `yaml:"markup_percent" env-default:"45"`
	LowMarginPct     float64 `yaml:"low_margin_pct" env-default:"15"`
	GoodMarginPct    float64 `yaml:"good_margin_pct" env-default:"40"`
}

func MustConfig() *Config {
	var cfg Config
	a := "./config/local.yaml"

	if err := cleanenv.ReadConfig(a, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
