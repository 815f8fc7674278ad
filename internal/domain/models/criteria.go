package models

// тип занятости
type JobType string

const (
	JobTypeFullTime  JobType = "FULL_TIME"
	JobTypePartTime  JobType = "PART_TIME"
	JobTypeContract  JobType = "CONTRACT"
	JobTypeTemporary JobType = "TEMPORARY"
)

// все допустимые типы занятости в порядке отображения
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeTemporary}

// диапазон зарплаты
type SalaryRange string

const (
	Salary0To1000    SalaryRange = "0-1000"
	Salary1001To2000 SalaryRange = "1001-2000"
	Salary2001To3000 SalaryRange = "2001-3000"
	Salary3001Plus   SalaryRange = "3001+"
)

var SalaryRanges = []SalaryRange{Salary0To1000, Salary1001To2000, Salary2001To3000, Salary3001Plus}

// код локации
type LocationCode string

const (
	LocationIca     LocationCode = "ICA"
	LocationChincha LocationCode = "CHINCHA"
	LocationPisco   LocationCode = "PISCO"
)

var LocationCodes = []LocationCode{LocationIca, LocationChincha, LocationPisco}

// диапазон опыта в годах
type ExperienceRange string

const (
	Experience0To1  ExperienceRange = "0-1"
	Experience1To3  ExperienceRange = "1-3"
	Experience3To5  ExperienceRange = "3-5"
	Experience5Plus ExperienceRange = "5+"
)

var ExperienceRanges = []ExperienceRange{Experience0To1, Experience1To3, Experience3To5, Experience5Plus}

// давность публикации
type DatePosted string

const (
	DatePostedToday DatePosted = "today"
	DatePostedWeek  DatePosted = "week"
	DatePostedMonth DatePosted = "month"
)

var DatePostedValues = []DatePosted{DatePostedToday, DatePostedWeek, DatePostedMonth}

// ключи фильтров (как в query-параметрах)
const (
	FilterKeyQuery       = "query"
	FilterKeyJobType     = "jobType"
	FilterKeySalaryRange = "salaryRange"
	FilterKeyLocation    = "location"
	FilterKeyExperience  = "experience"
	FilterKeyDate        = "date"
)

// FilterCriteria - набор фильтров. Пустое поле - нет ограничения по этому измерению
type FilterCriteria struct {
	Query       string
	JobType     JobType
	SalaryRange SalaryRange
	Location    LocationCode
	Experience  ExperienceRange
	Date        DatePosted
}

// IsEmpty - не задан ни один фильтр
func (c FilterCriteria) IsEmpty() bool {
	return c == FilterCriteria{}
}

// PaginationState - состояние постраничного вывода
type PaginationState struct {
	CurrentPage     int
	ItemsPerPage    int
	TotalItems      int
	MaxPagesVisible int
}
