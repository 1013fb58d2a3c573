package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"chasqui/internal/config"
)

// LoadConfigFile lee la configuracion desde un archivo YAML. Se usa cuando
// CONFIG_FILE esta definido; en caso contrario config.Load() toma los
// valores del entorno.
func LoadConfigFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}
