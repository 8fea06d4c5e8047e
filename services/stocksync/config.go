package stocksync

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// NotFoundBehavior names what the pipeline does with a product whose
// supplier page carries no stock figure.
type NotFoundBehavior string

const (
	// leave the product untouched
	NotFoundSkip NotFoundBehavior = "skip"
	// write manage_stock=true without quantity fields
	NotFoundFlag NotFoundBehavior = "flag"
	// write a zero quantity, marking the product out of stock
	NotFoundZero NotFoundBehavior = "zero"
)

type Config struct {
	ApiUrl         string           `envconfig:"API_URL" required:"true"`
	ConsumerKey    string           `envconfig:"CONSUMER_KEY" required:"true"`
	ConsumerSecret string           `envconfig:"CONSUMER_SECRET" required:"true"`
	MetaKey        string           `envconfig:"META_KEY" default:"warde_url"`
	Category       string           `envconfig:"CATEGORY"`
	OnNotFound     NotFoundBehavior `envconfig:"ON_NOT_FOUND" default:"skip"`
}

// LoadConfig reads the pipeline configuration from STOCKSYNC_* environment
// variables and validates it before any component is constructed.
func LoadConfig() (Config, error) {
	var config Config
	err := envconfig.Process("stocksync", &config)
	if err != nil {
		return Config{}, err
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	switch c.OnNotFound {
	case NotFoundSkip, NotFoundFlag, NotFoundZero:
		return nil
	}
	return fmt.Errorf("invalid ON_NOT_FOUND behavior %q", c.OnNotFound)
}
