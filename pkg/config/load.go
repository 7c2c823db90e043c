package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/petspa/salonsite/pkg/errors"
)

// Environment variables read by ApplyEnv.
const (
	EnvAddr      = "SALONSITE_ADDR"
	EnvBaseURL   = "SALONSITE_BASE_URL"
	EnvRedisAddr = "SALONSITE_REDIS_ADDR"
	EnvMongoURI  = "SALONSITE_MONGO_URI"
)

// Load reads path over the defaults, applies the environment and
// validates. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := errors.ValidatePath(path); err != nil {
			return Config{}, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		}
		if err := Decode(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	}
	ApplyEnv(&cfg, os.LookupEnv)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode merges TOML data into cfg. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overrides cfg from the environment. lookup is usually
// os.LookupEnv; empty values are ignored.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	get := func(k string) (string, bool) {
		v, ok := lookup(k)
		return v, ok && v != ""
	}
	if v, ok := get(EnvAddr); ok {
		cfg.Addr = v
	}
	if v, ok := get(EnvBaseURL); ok {
		cfg.BaseURL = v
	}
	if v, ok := get(EnvRedisAddr); ok {
		cfg.Storage.RedisAddr = v
		cfg.Cache.RedisAddr = v
	}
	if v, ok := get(EnvMongoURI); ok {
		cfg.Storage.MongoURI = v
	}
}

var (
	cookieNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	keyPrefixPattern  = regexp.MustCompile(`^[A-Za-z0-9_.:-]+$`)
)

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("cookie_name", func(fl validator.FieldLevel) bool {
		return cookieNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("key_prefix", func(fl validator.FieldLevel) bool {
		return keyPrefixPattern.MatchString(fl.Field().String())
	})
	return v
})

// Validate checks cfg and reports every failing field at once.
func Validate(cfg Config) error {
	err := validate().Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "validate config")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	sort.Strings(msgs)
	return errors.New(errors.ErrCodeInvalidConfig, "%s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s (value %v)", field, fe.Tag(), fe.Value())
	}
}
