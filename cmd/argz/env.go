// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "strings"

// envConfig holds the settings argz reads from the environment.
type envConfig struct {
	Spec    string // ARGZ_SPEC
	Format  string // ARGZ_FORMAT
	NoColor bool   // NO_COLOR
}

func loadEnv(getenv func(string) string) envConfig {
	return envConfig{
		Spec:    strings.TrimSpace(getenv("ARGZ_SPEC")),
		Format:  strings.TrimSpace(getenv("ARGZ_FORMAT")),
		NoColor: getenv("NO_COLOR") != "",
	}
}
