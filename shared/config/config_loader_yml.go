package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// универсальная функция загрузки секции конфига из .yml файла (используем дженерики)
// fn - функция конструктор конфига со значениями по умолчанию
//
// правила:
//   - пустой путь -> значения по умолчанию
//   - файла нет -> значения по умолчанию, без ошибки
//   - файл есть, но не читается или не парсится -> ошибка
func LoadYAMLConfig[T any](configPath string, fn func() *T) (*T, error) {
	// сначала получаем дефолтные значения, поверх них ляжет содержимое файла
	config := fn()

	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", configPath, err)
	}

	// пробуем анмаршалить конфиг из yml файла в структуру нужного типа
	if err := yaml.Unmarshal(yamlFile, config); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", configPath, err)
	}

	return config, nil
}
