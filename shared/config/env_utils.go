package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// getRequiredEnv получает обязательную переменную окружения
func getRequiredEnv(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return val, nil
}

// getEnvWithDefault получает переменную окружения или значение по умолчанию
func getEnvWithDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// getEnvAsInt32WithValidation получает переменную окружения как int32 с проверкой диапазона
func getEnvAsInt32WithValidation(key string, defaultValue, min, max int32) (int32, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue, nil
	}

	i, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: must be a 32-bit integer, got %q", key, val)
	}

	result := int32(i)
	if result < min || result > max {
		return defaultValue, fmt.Errorf("%s: value %d is out of range [%d, %d]", key, result, min, max)
	}

	return result, nil
}

// getEnvAsDurationWithValidation получает переменную окружения как time.Duration с проверкой диапазона
// допускается как строка длительности ("1m", "300ms"), так и число секунд
func getEnvAsDurationWithValidation(key string, defaultValue, min, max time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		secs, convErr := strconv.ParseInt(val, 10, 64)
		if convErr != nil {
			return defaultValue, fmt.Errorf("%s: must be a duration (like '1m', '1h') or number of seconds, got %q", key, val)
		}
		d = time.Duration(secs) * time.Second
	}

	if d < min || d > max {
		return defaultValue, fmt.Errorf("%s: duration %v is out of range [%v, %v]", key, d, min, max)
	}

	return d, nil
}

// GetEnvWithDefault - экспортируемая обёртка для сервисных конфигов
func GetEnvWithDefault(key, defaultValue string) string {
	return getEnvWithDefault(key, defaultValue)
}
