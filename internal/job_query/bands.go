package job_query

import "job_listing/internal/domain/models"

// band - числовой диапазон фильтра. Верхняя граница включается целиком,
// т.е. значение попадает в диапазон при lo <= v < hi+1 (1000,50 входит в "0-1000")
type band struct {
	lo   float64
	hi   float64
	open bool // без верхней границы ("3001+")
}

func (b band) contains(v float64) bool {
	return v >= b.lo && (b.open || v < b.hi+1)
}

var salaryBands = map[models.SalaryRange]band{
	models.Salary0To1000:    {lo: 0, hi: 1000},
	models.Salary1001To2000: {lo: 1001, hi: 2000},
	models.Salary2001To3000: {lo: 2001, hi: 3000},
	models.Salary3001Plus:   {lo: 3001, open: true},
}

var experienceBands = map[models.ExperienceRange]band{
	models.Experience0To1:  {lo: 0, hi: 1},
	models.Experience1To3:  {lo: 1, hi: 3},
	models.Experience3To5:  {lo: 3, hi: 5},
	models.Experience5Plus: {lo: 5, open: true},
}
