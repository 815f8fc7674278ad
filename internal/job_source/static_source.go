package job_source

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"time"

	"job_listing/configs"
	"job_listing/internal/domain/models"
	"job_listing/internal/listing_interfaces"
	"job_listing/internal/locations"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// демонстрационный набор вакансий, используется если data_file не задан
//
//go:embed data/sample_jobs.yml
var sampleJobs []byte

// момент, относительно которого составлен встроенный набор (полдень 15.03.2025 по Лиме)
var sampleReferenceTime = time.Date(2025, 3, 15, 12, 0, 0, 0, time.FixedZone("PET", -5*60*60))

// формат файла с вакансиями
type jobsFile struct {
	Jobs      []models.JobRecord `yaml:"jobs"`
	Locations []models.Location  `yaml:"locations"`
}

// StaticSource - неизменяемый набор вакансий в памяти
type StaticSource struct {
	name      string
	jobs      []models.JobRecord
	byID      map[models.JobID]int
	locations []models.Location
}

// NewStaticSource - конструктор для фабрики: читает data_file или встроенный набор
func NewStaticSource(conf *configs.SourceConfig, log *pterm.Logger) (listing_interfaces.JobSource, error) {
	data := sampleJobs
	origin := "embedded sample"
	if path := conf.Static.DataFile; path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read jobs file %q: %w", path, err)
		}
		data, origin = raw, path
	}

	name := conf.Static.Name
	if name == "" {
		name = string(SourceTypeStatic)
	}

	src, err := LoadStaticSource(name, data, conf.Static.Locations)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", origin, err)
	}

	if conf.Static.DataFile == "" && conf.Static.RebaseSampleDates {
		src.shiftPostedAt(time.Since(sampleReferenceTime))
	}

	if log != nil {
		log.Info("static job source loaded", log.Args("origin", origin, "jobs", len(src.jobs), "locations", len(src.locations)))
	}
	return src, nil
}

// LoadStaticSource разбирает yaml с вакансиями. id обязаны быть непустыми и уникальными.
// справочник локаций: catalog, затем локации из файла, затем адреса компаний
func LoadStaticSource(name string, data []byte, catalog []models.Location) (*StaticSource, error) {
	var file jobsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	byID := make(map[models.JobID]int, len(file.Jobs))
	for i, job := range file.Jobs {
		if job.ID == "" {
			return nil, fmt.Errorf("%w: job #%d has empty id", ErrInvalidData, i+1)
		}
		if _, ok := byID[job.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate job id %q", ErrInvalidData, job.ID)
		}
		byID[job.ID] = i
	}

	if file.Jobs == nil {
		file.Jobs = []models.JobRecord{}
	}

	return &StaticSource{
		name:      name,
		jobs:      file.Jobs,
		byID:      byID,
		locations: locations.Merge(catalog, file.Locations, locations.FromJobs(file.Jobs)),
	}, nil
}

// сдвиг дат публикации с сохранением интервалов между ними
func (s *StaticSource) shiftPostedAt(delta time.Duration) {
	for i := range s.jobs {
		if !s.jobs[i].PostedAt.IsZero() {
			s.jobs[i].PostedAt = s.jobs[i].PostedAt.Add(delta)
		}
	}
}

func (s *StaticSource) Name() string {
	return s.name
}

// ListJobs - копия коллекции в исходном порядке
func (s *StaticSource) ListJobs(ctx context.Context) ([]models.JobRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.jobs), nil
}

func (s *StaticSource) GetJob(ctx context.Context, id models.JobID) (models.JobRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.JobRecord{}, err
	}
	i, ok := s.byID[id]
	if !ok {
		return models.JobRecord{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	return s.jobs[i], nil
}

func (s *StaticSource) SuggestLocations(ctx context.Context, prefix string, limit int) ([]models.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return locations.Suggest(s.locations, prefix, limit), nil
}

// Проверка на этапе компиляции, что тип реализует интерфейс
var _ listing_interfaces.JobSource = (*StaticSource)(nil)
