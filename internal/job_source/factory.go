// фабрика источников вакансий: тип источника -> конструктор + конфиг
package job_source

import (
	"fmt"
	"sync"

	"job_listing/configs"
	"job_listing/internal/listing_interfaces"

	"github.com/pterm/pterm"
)

// SourceType тип источника
type SourceType string

const (
	SourceTypeStatic SourceType = configs.SourceTypeStatic
	SourceTypeRemote SourceType = configs.SourceTypeRemote
)

// SourceConstructor функция-конструктор источника
type SourceConstructor func(conf *configs.SourceConfig, log *pterm.Logger) (listing_interfaces.JobSource, error)

// SourceFactory фабрика источников
type SourceFactory struct {
	constructors map[SourceType]SourceConstructor
	configs      map[SourceType]*configs.SourceConfig
	log          *pterm.Logger
	mu           sync.RWMutex
}

// NewSourceFactory создает новую фабрику
func NewSourceFactory(log *pterm.Logger) *SourceFactory {
	return &SourceFactory{
		constructors: make(map[SourceType]SourceConstructor),
		configs:      make(map[SourceType]*configs.SourceConfig),
		log:          log,
	}
}

// Register регистрирует конструктор источника и его конфиг
func (f *SourceFactory) Register(sourceType SourceType, conf *configs.SourceConfig, constructor SourceConstructor) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.constructors[sourceType] = constructor
	f.configs[sourceType] = conf
}

// Create - создает источник, если для типа зарегистрированы конструктор и конфиг
func (f *SourceFactory) Create(sourceType SourceType) (listing_interfaces.JobSource, error) {
	f.mu.RLock()
	constructor, ok := f.constructors[sourceType]
	conf, configOk := f.configs[sourceType]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("source type not registered: %s", sourceType)
	}
	if !configOk || conf == nil {
		return nil, fmt.Errorf("config not found for source: %s", sourceType)
	}
	return constructor(conf, f.log)
}

// NewDefaultFactory - фабрика со всеми известными типами источников
func NewDefaultFactory(conf *configs.SourceConfig, log *pterm.Logger) *SourceFactory {
	f := NewSourceFactory(log)
	f.Register(SourceTypeStatic, conf, NewStaticSource)
	f.Register(SourceTypeRemote, conf, NewRemoteSource)
	return f
}
