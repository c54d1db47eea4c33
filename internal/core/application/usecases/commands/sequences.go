package commands

import (
	"fmt"
	"time"
)

// Sequence names are scoped by month so numbering restarts every period.
func orderSequenceName(period time.Time) string {
	return fmt.Sprintf("order:%s", period.UTC().Format("200601"))
}

func productionSequenceName(facilityCode string, period time.Time) string {
	return fmt.Sprintf("production:%s:%s", facilityCode, period.UTC().Format("200601"))
}
