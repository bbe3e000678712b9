/*
 * Copyright 2026 Clockops Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment variable the loader recognizes.
const EnvPrefix = "FLEETSYNC_"

// Load reads the JSON configuration file at path, applies FLEETSYNC_*
// environment overrides, fills defaults and validates the result.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides walks the config struct and overrides fields from
// environment variables. Nested struct fields use underscore separation:
// FLEETSYNC_NETWORK_TIMEOUT_SECONDS maps to Config.Network.TimeoutSeconds.
func applyEnvOverrides(cfg *Config) error {
	return overrideStruct(reflect.ValueOf(cfg).Elem(), EnvPrefix)
}

func overrideStruct(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)

		if !value.CanSet() {
			continue
		}

		key := prefix + envKey(field)

		if value.Kind() == reflect.Ptr {
			if value.IsNil() {
				continue
			}

			value = value.Elem()
		}

		if value.Kind() == reflect.Struct {
			if err := overrideStruct(value, key+"_"); err != nil {
				return err
			}

			continue
		}

		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}

		if err := setField(value, raw); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}

	return nil
}

func envKey(field reflect.StructField) string {
	name := field.Name

	if tag, ok := field.Tag.Lookup("json"); ok {
		if tagName := strings.Split(tag, ",")[0]; tagName != "" && tagName != "-" {
			name = tagName
		}
	}

	return strings.ToUpper(name)
}

func setField(v reflect.Value, raw string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}

		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}

		v.SetInt(n)
	default:
		return fmt.Errorf("unsupported field kind %s", v.Kind())
	}

	return nil
}
