// SPDX-License-Identifier: EPL-2.0

// Package config loads operator settings from a YAML file via
// github.com/spf13/viper, with AUDWM_-prefixed environment variable
// overrides and hard defaults: embed_strength matches
// watermark.DefaultBaseStrength, hop_size defaults to 1024, and the frame
// settings match payload.DefaultFrameConfig.
//
//	cfg, err := config.Load("audiowm.yaml")
//	if err != nil {
//	    // Handle error
//	}
//	bank, _ := watermark.NewCarrierBank(secret, payloadLen, cfg.Watermark.HopSize*4)
package config
