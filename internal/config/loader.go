package config

import (
	"os"

	"github.com/0xjuang/portal22/internal/logger"
	"github.com/spf13/viper"
)

// LoadInventory reads the machine list from the inventory file at path.
//
// Load problems are deliberately soft: a missing file, unparsable YAML, or
// an absent "machines" key each log a distinct diagnostic and yield an empty
// slice, so the run continues and simply does nothing. Malformed individual
// records are not rejected here; field validation happens per record during
// processing.
func LoadInventory(path string, log logger.Logger) []Machine {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			log.Warn("inventory file not found: %s", path)
		} else {
			log.Warn("failed to parse inventory %s: %v", path, err)
		}
		return nil
	}

	if !v.IsSet("machines") {
		log.Warn("no 'machines' key found in %s", path)
		return nil
	}

	var machines []Machine
	if err := v.UnmarshalKey("machines", &machines); err != nil {
		log.Warn("invalid 'machines' entries in %s: %v", path, err)
		return nil
	}

	return machines
}
