package domain

import "time"

// Ключи справочников, которые держатся в кэше.
const (
	RefCountries       = "countries"
	RefDevices         = "devices"
	RefOperatingSystem = "operating_systems"
	RefBrowsers        = "browsers"
	RefLanguages       = "languages"
	RefTimezones       = "timezones"
	RefConnectionTypes = "connection_types"
)

// referenceEndpoints - ключ справочника -> endpoint внешнего API.
var referenceEndpoints = map[string]string{
	RefCountries:       "/references/countries",
	RefDevices:         "/references/devices",
	RefOperatingSystem: "/references/operating-systems",
	RefBrowsers:        "/references/browsers",
	RefLanguages:       "/references/languages",
	RefTimezones:       "/references/timezones",
	RefConnectionTypes: "/references/connection-types",
}

// ReferenceKeys - все ключи справочников в стабильном порядке.
func ReferenceKeys() []string {
	return []string{
		RefCountries, RefDevices, RefOperatingSystem, RefBrowsers,
		RefLanguages, RefTimezones, RefConnectionTypes,
	}
}

// ReferenceEndpoint - endpoint справочника и признак, что ключ известен.
func ReferenceEndpoint(key string) (string, bool) {
	ep, ok := referenceEndpoints[key]
	return ep, ok
}

// RefreshJob - периодическое обновление одного ключа кэша.
type RefreshJob struct {
	CacheKey  string        `json:"cache_key"`
	Endpoint  string        `json:"endpoint"`
	Interval  time.Duration `json:"interval"`
	LastRunAt time.Time     `json:"last_run_at"`
}

// ReferenceJobs - по одной задаче на каждый справочник.
func ReferenceJobs(interval time.Duration) []RefreshJob {
	keys := ReferenceKeys()
	jobs := make([]RefreshJob, 0, len(keys))
	for _, k := range keys {
		jobs = append(jobs, RefreshJob{CacheKey: k, Endpoint: referenceEndpoints[k], Interval: interval})
	}
	return jobs
}
