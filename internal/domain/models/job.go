package models

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// JobID - идентификатор вакансии. Источники отдают его то числом, то строкой,
// внутри сервиса он всегда строка
type JobID string

// разбор id из yaml: допускаются и числа, и строки
func (id *JobID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &yaml.TypeError{Errors: []string{"job id must be a scalar"}}
	}
	*id = JobID(strings.TrimSpace(node.Value))
	return nil
}

// разбор id из json: допускаются и числа, и строки
func (id *JobID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		*id = JobID(strings.TrimSpace(unquoted))
		return nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return &JobIDError{Raw: raw}
	}
	*id = JobID(raw)
	return nil
}

func (id JobID) String() string {
	return string(id)
}

// ошибка разбора идентификатора вакансии
type JobIDError struct {
	Raw string
}

func (e *JobIDError) Error() string {
	return "invalid job id: " + e.Raw
}

// информация о работодателе
type Company struct {
	Name      string `yaml:"name"`
	Logo      string `yaml:"logo"`
	Rating    string `yaml:"rating"`    // "4,3"
	Employees string `yaml:"employees"` // "500+"
	Location  string `yaml:"location"`  // "Subtanjalla, Ica"
	Verified  bool   `yaml:"verified"`
}

// JobRecord - вакансия в том виде, в котором её отдаёт источник. Запись не изменяется после загрузки
type JobRecord struct {
	ID           JobID     `yaml:"id"`
	Title        string    `yaml:"title"`
	Company      Company   `yaml:"company"`
	Salary       string    `yaml:"salary"` // "S/ 1.025,00 · Mensual"
	ContractType string    `yaml:"contract_type"`
	Schedule     string    `yaml:"schedule"`
	Duration     string    `yaml:"duration"`
	Description  string    `yaml:"description"`
	Requirements []string  `yaml:"requirements"`
	Benefits     []string  `yaml:"benefits"`
	PostedAt     time.Time `yaml:"posted_at"`
	Type         JobType   `yaml:"type"`          // классификация для фильтра jobType
	LocationCode string    `yaml:"location_code"` // если пусто - вычисляется из Company.Location
	Experience   string    `yaml:"experience"`    // "1 año", "Sin experiencia", "3-5 años"
	URL          string    `yaml:"url"`
}

// Location - элемент справочника локаций для подсказок
type Location struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}
