/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvCatalog  = "DERRCLASS_CATALOG"
	EnvEncoding = "DERRCLASS_ENCODING"
	EnvDebug    = "DERRCLASS_DEBUG"
)

// Config holds the defaults of the persistent flags.
type Config struct {
	// Catalog is a YAML catalog path. Empty means the default taxonomy.
	Catalog string
	// Encoding overrides the namespace default encoding.
	Encoding string
	Debug    bool
}

// LoadConfig reads the DERRCLASS_* variables. Values from envFile fill in
// variables the process environment does not set; a missing file is not an
// error.
func LoadConfig(envFile string) (Config, error) {
	vars := map[string]string{}
	if envFile != "" {
		fromFile, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
		for k, v := range fromFile {
			vars[k] = v
		}
	}
	for _, k := range []string{EnvCatalog, EnvEncoding, EnvDebug} {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}

	cfg := Config{Catalog: vars[EnvCatalog], Encoding: vars[EnvEncoding]}
	if v := vars[EnvDebug]; v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.New(EnvDebug + ": " + err.Error())
		}
		cfg.Debug = debug
	}
	return cfg, nil
}
