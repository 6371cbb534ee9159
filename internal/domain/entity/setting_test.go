package entity

import (
	"testing"
	"time"
)

func TestParseClinicSettingsDefaults(t *testing.T) {
	settings, warnings := ParseClinicSettings(nil)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if settings.BlockSaturdays || settings.BlockSundays {
		t.Error("weekend blackouts should default to off")
	}

	for _, w := range ConfigurableWeekdays() {
		limit, ok := settings.Limit(w)
		if !ok {
			t.Fatalf("expected a default limit for %s", WeekdayName(w))
		}
		if limit != 999 {
			t.Errorf("default limit for %s = %d, want 999", WeekdayName(w), limit)
		}
	}

	if _, ok := settings.Limit(time.Sunday); ok {
		t.Error("Sunday must not carry a capacity limit")
	}
}

func TestParseClinicSettingsValues(t *testing.T) {
	rows := []Setting{
		{Key: KeyBlockSaturdays, Value: "true"},
		{Key: WeekdayLimitKey(time.Monday), Value: "5"},
		{Key: PriceKey(ServiceBreast), Value: "850"},
	}

	settings, warnings := ParseClinicSettings(rows)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if !settings.BlockSaturdays {
		t.Error("BlockSaturdays not parsed")
	}
	if settings.BlockSundays {
		t.Error("BlockSundays should stay off")
	}
	if limit, _ := settings.Limit(time.Monday); limit != 5 {
		t.Errorf("Monday limit = %d, want 5", limit)
	}
	if settings.Prices[ServiceBreast] != "850" {
		t.Errorf("price = %q, want 850", settings.Prices[ServiceBreast])
	}
	if settings.Prices[ServiceBiopsy] != "" {
		t.Errorf("unconfigured price = %q, want empty", settings.Prices[ServiceBiopsy])
	}
}

func TestParseClinicSettingsMalformedLimit(t *testing.T) {
	rows := []Setting{
		{Key: WeekdayLimitKey(time.Tuesday), Value: "muchos"},
		{Key: WeekdayLimitKey(time.Friday), Value: "-3"},
	}

	settings, warnings := ParseClinicSettings(rows)
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want 2 entries", warnings)
	}

	// Malformed limits mean no cap, never a crash or a zero cap.
	if _, ok := settings.Limit(time.Tuesday); ok {
		t.Error("malformed Tuesday limit should be uncapped")
	}
	if _, ok := settings.Limit(time.Friday); ok {
		t.Error("negative Friday limit should be uncapped")
	}
	if limit, _ := settings.Limit(time.Monday); limit != 999 {
		t.Errorf("Monday limit = %d, want the default 999", limit)
	}
}

func TestWeekdayLimitKey(t *testing.T) {
	if got := WeekdayLimitKey(time.Monday); got != "max_pacientes_lunes" {
		t.Errorf("WeekdayLimitKey(Monday) = %q", got)
	}
	if got := WeekdayLimitKey(time.Sunday); got != "" {
		t.Errorf("WeekdayLimitKey(Sunday) = %q, want empty", got)
	}
}

func TestValidServiceKey(t *testing.T) {
	for _, svc := range ServiceCatalog() {
		if !ValidServiceKey(svc.Key) {
			t.Errorf("catalog key %q reported invalid", svc.Key)
		}
	}
	if ValidServiceKey("masajes") {
		t.Error("unknown key reported valid")
	}
}
