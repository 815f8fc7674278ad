// кэш отфильтрованных наборов вакансий
package result_cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"job_listing/internal/domain/models"
	"job_listing/internal/job_query"
)

// Key - ключ кэша для выборки: источник + фильтры + календарная дата вычисления.
// дата в ключе не даёт фильтру date пережить смену суток
func Key(sourceName string, criteria models.FilterCriteria, now time.Time) string {
	h := sha256.New()
	h.Write([]byte(sourceName))
	h.Write([]byte{0})
	h.Write([]byte(job_query.CanonicalKey(criteria)))
	h.Write([]byte{0})
	h.Write([]byte(now.Format(time.DateOnly)))
	return "jobs:" + hex.EncodeToString(h.Sum(nil))
}
