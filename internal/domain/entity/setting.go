package entity

import (
	"fmt"
	"strconv"
	"time"
)

// Setting is one key/value row of the clinic configuration table. The table
// is written as a whole batch by the admin settings screen and read on every
// availability or pricing computation.
type Setting struct {
	ID    int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Key   string `gorm:"column:clave;type:varchar(100);uniqueIndex;not null" json:"key"`
	Value string `gorm:"column:valor;type:text" json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}

// Well-known setting keys.
const (
	KeyBlockSaturdays = "bloquear_sabados"
	KeyBlockSundays   = "bloquear_domingos"

	weekdayKeyPrefix = "max_pacientes_"
	priceKeyPrefix   = "precio_"

	// DefaultDailyLimit is the stored capacity for weekdays without an
	// explicit limit. High enough to never fill in practice.
	DefaultDailyLimit = "999"
)

// weekdayNames maps the six configurable weekdays to their key suffixes.
// Sunday has no capacity key; it is governed solely by the blackout flag.
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miercoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sabado",
}

// WeekdayName returns the configuration name for a weekday, "" for Sunday.
func WeekdayName(w time.Weekday) string {
	return weekdayNames[w]
}

// WeekdayLimitKey returns the setting key holding the capacity limit for w,
// or "" for Sunday.
func WeekdayLimitKey(w time.Weekday) string {
	name, ok := weekdayNames[w]
	if !ok {
		return ""
	}
	return weekdayKeyPrefix + name
}

// PriceKey returns the setting key holding the price for a catalog service.
func PriceKey(serviceKey string) string {
	return priceKeyPrefix + serviceKey
}

// ConfigurableWeekdays lists the weekdays that carry a capacity limit,
// Monday through Saturday.
func ConfigurableWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}

// ClinicSettings is the typed view of the settings table, parsed once at the
// store adapter boundary. A missing key is never "zero by omission": it
// resolves to its documented default before anything reads it.
type ClinicSettings struct {
	BlockSaturdays bool
	BlockSundays   bool

	// Limits holds the per-weekday patient capacity for Monday-Saturday.
	// A weekday absent from the map has no cap.
	Limits map[time.Weekday]int

	// Prices maps catalog service keys to their configured price strings.
	// Unconfigured services map to "".
	Prices map[string]string
}

// Limit returns the capacity limit for w. ok is false when w carries no cap
// (Sunday, or a missing/malformed limit value).
func (s ClinicSettings) Limit(w time.Weekday) (limit int, ok bool) {
	limit, ok = s.Limits[w]
	return limit, ok
}

// ParseClinicSettings builds a ClinicSettings from raw rows, filling in
// defaults for absent keys. Malformed capacity values are treated as "no cap"
// and reported in warnings for the caller to log; they are never fatal.
func ParseClinicSettings(rows []Setting) (ClinicSettings, []string) {
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	var warnings []string
	settings := ClinicSettings{
		BlockSaturdays: values[KeyBlockSaturdays] == "true",
		BlockSundays:   values[KeyBlockSundays] == "true",
		Limits:         make(map[time.Weekday]int, len(weekdayNames)),
		Prices:         make(map[string]string, len(ServiceCatalog())),
	}

	for _, w := range ConfigurableWeekdays() {
		raw, present := values[WeekdayLimitKey(w)]
		if !present {
			raw = DefaultDailyLimit
		}
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			warnings = append(warnings, fmt.Sprintf("invalid capacity limit %q for %s, treating as unlimited", raw, WeekdayLimitKey(w)))
			continue
		}
		settings.Limits[w] = limit
	}

	for _, svc := range ServiceCatalog() {
		settings.Prices[svc.Key] = values[PriceKey(svc.Key)]
	}

	return settings, warnings
}
