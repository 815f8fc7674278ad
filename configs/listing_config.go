package configs

import "job_listing/shared/config"

// параметры выдачи списка вакансий
type ListingConfig struct {
	DefaultPerPage     int `yaml:"default_per_page"`     // вакансий на странице, если клиент не указал per_page
	MaxPerPage         int `yaml:"max_per_page"`         // верхняя граница per_page
	MaxPagesVisible    int `yaml:"max_pages_visible"`    // ширина окна номеров страниц
	LocationSuggestMin int `yaml:"location_suggest_min"` // минимальная длина строки для подсказок локаций
	LocationSuggestMax int `yaml:"location_suggest_max"` // максимум подсказок в ответе
}

func DefaultListingConfig() *ListingConfig {
	return &ListingConfig{
		DefaultPerPage:     5,
		MaxPerPage:         100,
		MaxPagesVisible:    5,
		LocationSuggestMin: 3,
		LocationSuggestMax: 10,
	}
}

// проверка значений конфига выдачи
func (c *ListingConfig) Validate() error {
	if c.DefaultPerPage <= 0 {
		return &config.ConfigError{Field: "DefaultPerPage", Msg: "must be positive"}
	}
	if c.MaxPerPage < c.DefaultPerPage {
		return &config.ConfigError{Field: "MaxPerPage", Msg: "must not be less than default_per_page"}
	}
	if c.MaxPagesVisible <= 0 {
		return &config.ConfigError{Field: "MaxPagesVisible", Msg: "must be positive"}
	}
	if c.LocationSuggestMin < 1 {
		return &config.ConfigError{Field: "LocationSuggestMin", Msg: "must be at least 1"}
	}
	if c.LocationSuggestMax <= 0 {
		return &config.ConfigError{Field: "LocationSuggestMax", Msg: "must be positive"}
	}
	return nil
}
