package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigRelPath = "configs/mapcheck.yml"

// Load reads tool configuration. Resolution order: the explicit path when
// given, then the MAPCHECK_CONFIG environment variable, then an upward
// search for configs/mapcheck.yml starting at the working directory. When
// no file is found the returned Config holds defaults only.
func Load(cfgPath string) (Config, error) {
	if cfgPath == "" {
		cfgPath = os.Getenv("MAPCHECK_CONFIG")
	}
	if cfgPath != "" {
		if !filepath.IsAbs(cfgPath) {
			curDir, err := os.Getwd()
			if err != nil {
				return Config{}, err
			}
			cfgPath = filepath.Join(curDir, cfgPath)
		}
		if !fileExist(cfgPath) {
			return Config{}, fmt.Errorf("config file not found: %s", cfgPath)
		}
		return load(cfgPath)
	}

	curDir, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}
	if found := findConfigUpward(curDir); found != "" {
		return load(found)
	}
	return defaults(), nil
}

func findConfigUpward(startDir string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
