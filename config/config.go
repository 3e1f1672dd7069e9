// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds operator-tunable settings: how audio is blocked, how strongly a payload is embedded, how many
// bits a frame budget gets, and where the key store lives.
type Config struct {
	Watermark struct {
		HopSize       int     `mapstructure:"hop_size"`
		EmbedStrength float64 `mapstructure:"embed_strength"`
	} `mapstructure:"watermark"`

	Frame struct {
		TotalBits          int     `mapstructure:"total_bits"`
		DataShards         int     `mapstructure:"data_shards"`
		ParityShards       int     `mapstructure:"parity_shards"`
		MinShardConfidence float64 `mapstructure:"min_shard_confidence"`
	} `mapstructure:"frame"`

	Keystore struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"keystore"`
}

// Load reads config from the YAML file at path (optional — pass "" to
// rely entirely on environment variables and defaults), then applies
// AUDWM_-prefixed environment overrides, e.g. AUDWM_WATERMARK_HOP_SIZE.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	v.SetEnvPrefix("AUDWM")
	v.AutomaticEnv()

	// embed_strength mirrors watermark.DefaultBaseStrength and the frame
	// defaults mirror payload.DefaultFrameConfig. watermark.Options has no
	// default hop size, so hop_size's 1024 is set here only.
	v.SetDefault("watermark.hop_size", 1024)
	v.SetDefault("watermark.embed_strength", 0.007)
	v.SetDefault("frame.total_bits", 464)
	v.SetDefault("frame.data_shards", 4)
	v.SetDefault("frame.parity_shards", 2)
	v.SetDefault("frame.min_shard_confidence", 0.6)
	v.SetDefault("keystore.path", "audiowm-secrets.db")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &cfg, nil
}
