package access

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type allowListFile struct {
	Phones []string `yaml:"phones"`
}

// LoadAllowList читает список разрешённых номеров из YAML-файла вида:
//
//	phones:
//	  - "+79017250082"
//	  - "996555123456"
//
// Если путь пустой, возвращается fallback из переменных окружения.
func LoadAllowList(path string, fallback []string) ([]string, error) {
	if path == "" {
		return fallback, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read allow list %s: %w", path, err)
	}

	var parsed allowListFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse allow list %s: %w", path, err)
	}

	return parsed.Phones, nil
}
