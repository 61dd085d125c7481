package service

import (
	"fmt"
	"math"

	"github.com/LidiaAlemu/meditrack/internal"
)

// Metric names a numeric vital-log field.
type Metric string

const (
	MetricSystolic   Metric = "systolic"
	MetricDiastolic  Metric = "diastolic"
	MetricHeartRate  Metric = "heartRate"
	MetricWeight     Metric = "weight"
	MetricBloodSugar Metric = "bloodSugar"
)

// Metrics lists every chartable field in display order.
var Metrics = []Metric{MetricSystolic, MetricDiastolic, MetricHeartRate, MetricWeight, MetricBloodSugar}

// Classification cutoffs. Single cutoffs without a cited clinical basis;
// kept overridable rather than hard-coded into the comparison sites.
var (
	SystolicMonitorThreshold   = 120.0
	DiastolicMonitorThreshold  = 80.0
	HeartRateElevatedThreshold = 100.0
)

// NoData is the sentinel shown when no log carries the requested metric.
const NoData = "no data"

const (
	trendWindow  = 7
	recentWindow = 5
)

func metricValue(l *internal.VitalLog, m Metric) (float64, bool) {
	switch m {
	case MetricSystolic:
		if l.Systolic != nil {
			return float64(*l.Systolic), true
		}
	case MetricDiastolic:
		if l.Diastolic != nil {
			return float64(*l.Diastolic), true
		}
	case MetricHeartRate:
		if l.HeartRate != nil {
			return float64(*l.HeartRate), true
		}
	case MetricWeight:
		if l.Weight != nil {
			return *l.Weight, true
		}
	case MetricBloodSugar:
		if l.BloodSugar != nil {
			return float64(*l.BloodSugar), true
		}
	}
	return 0, false
}

// Average computes the mean of the logs that carry the metric, rounded to
// one decimal. ok is false when no log has the metric; logs without it are
// skipped, never treated as zero.
func Average(logs []internal.VitalLog, m Metric) (float64, bool) {
	sum := 0.0
	count := 0
	for i := range logs {
		if v, ok := metricValue(&logs[i], m); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return math.Round(sum/float64(count)*10) / 10, true
}

// FormatAverage renders an Average result for display: one decimal place or
// the no-data sentinel.
func FormatAverage(v float64, ok bool) string {
	if !ok {
		return NoData
	}
	return fmt.Sprintf("%.1f", v)
}

// TrendPoint is one charted value.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Trend returns up to window points for the metric, oldest first for
// charting. logs must be newest-first, as returned by the repositories.
func Trend(logs []internal.VitalLog, m Metric, window int) []TrendPoint {
	picked := []TrendPoint{}
	for i := range logs {
		if len(picked) == window {
			break
		}
		if v, ok := metricValue(&logs[i], m); ok {
			picked = append(picked, TrendPoint{Date: logs[i].Date.Format("2006-01-02"), Value: v})
		}
	}
	// picked is newest-first; charts want chronological order
	for i, j := 0, len(picked)-1; i < j; i, j = i+1, j-1 {
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked
}

// RecentWindow returns the first n logs of a newest-first slice.
func RecentWindow(logs []internal.VitalLog, n int) []internal.VitalLog {
	if len(logs) < n {
		n = len(logs)
	}
	return logs[:n]
}

// BloodPressureStatus classifies average blood pressure against the monitor
// thresholds. Missing averages simply don't trigger the cutoff.
func BloodPressureStatus(avgSystolic float64, sysOK bool, avgDiastolic float64, diaOK bool) string {
	if !sysOK && !diaOK {
		return NoData
	}
	if (sysOK && avgSystolic > SystolicMonitorThreshold) || (diaOK && avgDiastolic > DiastolicMonitorThreshold) {
		return "Monitor"
	}
	return "Normal"
}

// HeartRateStatus classifies the average heart rate.
func HeartRateStatus(avgHeartRate float64, hrOK bool) string {
	if !hrOK {
		return NoData
	}
	if avgHeartRate > HeartRateElevatedThreshold {
		return "Elevated"
	}
	return "Normal"
}

// DashboardSummary is the aggregate view derived from one list fetch. It is
// recomputed in full on every request; nothing here is persisted.
type DashboardSummary struct {
	Averages            map[Metric]string       `json:"averages"`
	BloodPressureStatus string                  `json:"bloodPressureStatus"`
	HeartRateStatus     string                  `json:"heartRateStatus"`
	Trends              map[Metric][]TrendPoint `json:"trends"`
	Recent              []internal.VitalLog     `json:"recent"`
}

// BuildSummary derives the dashboard from a newest-first log slice. Logs
// with no recognized fields contribute to no metric but cause no error.
func BuildSummary(logs []internal.VitalLog) DashboardSummary {
	summary := DashboardSummary{
		Averages: make(map[Metric]string, len(Metrics)),
		Trends:   make(map[Metric][]TrendPoint, len(Metrics)),
		Recent:   RecentWindow(logs, recentWindow),
	}
	for _, m := range Metrics {
		avg, ok := Average(logs, m)
		summary.Averages[m] = FormatAverage(avg, ok)
		summary.Trends[m] = Trend(logs, m, trendWindow)
	}

	avgSys, sysOK := Average(logs, MetricSystolic)
	avgDia, diaOK := Average(logs, MetricDiastolic)
	summary.BloodPressureStatus = BloodPressureStatus(avgSys, sysOK, avgDia, diaOK)

	avgHR, hrOK := Average(logs, MetricHeartRate)
	summary.HeartRateStatus = HeartRateStatus(avgHR, hrOK)

	return summary
}
