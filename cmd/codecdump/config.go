// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/kelseyhightower/envconfig"

// config holds the defaults codecdump falls back to when a flag is not
// given explicitly. It is populated from the environment (CODECDUMP_FORMAT,
// CODECDUMP_MODE) so a deployment can pin a default without every invocation
// repeating --format/--mode.
type config struct {
	Format string `envconfig:"format" default:"wire"`
	Mode   string `envconfig:"mode" default:"default"`
}

func loadConfig() (config, error) {
	var c config
	if err := envconfig.Process("codecdump", &c); err != nil {
		return config{}, err
	}
	return c, nil
}
