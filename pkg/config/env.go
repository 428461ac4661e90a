package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "SEASONS_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a lookup over the process environment backed by the
// given .env files. Process variables win over file entries and earlier
// files win over later ones. Missing files are skipped.
func EnvLookup(files ...string) (LookupFunc, error) {
	fromFiles := make(map[string]string)
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error reading %s: %w", f, err)
		}
		for k, v := range vals {
			if _, ok := fromFiles[k]; !ok {
				fromFiles[k] = v
			}
		}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fromFiles[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides configuration fields from SEASONS_* variables and
// re-validates. A SEASONS_LOCATION preset replaces the whole location
// before any coordinate variables apply.
func (c *ConfigData) ApplyEnv(lookup LookupFunc) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}
	float := func(name string, dst *float64) error {
		v, ok := get(name)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a number", ErrInvalid, EnvPrefix, name, v)
		}
		*dst = f
		return nil
	}
	str := func(name string, dst *string) {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	if v, ok := get("LOCATION"); ok {
		c.Location = LocationData{Preset: v}
		c.Location.applyDefaults()
	}
	for name, dst := range map[string]*float64{
		"LATITUDE":  &c.Location.Latitude,
		"LONGITUDE": &c.Location.Longitude,
		"ALTITUDE":  &c.Location.Altitude,
	} {
		if err := float(name, dst); err != nil {
			return err
		}
	}
	str("TIMEZONE", &c.Location.Timezone)
	str("SCHEME", &c.Display.Scheme)
	str("MODE", &c.Display.Mode)
	str("VARIANT", &c.Display.Variant)
	str("LISTEN_ADDR", &c.Server.ListenAddr)
	if v, ok := get("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sPORT=%q is not an integer", ErrInvalid, EnvPrefix, v)
		}
		c.Server.Port = port
	}

	return c.Validate()
}
