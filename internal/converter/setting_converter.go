package converter

import (
	"strconv"

	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
)

// SettingsToResponse renders the typed settings record back into the
// weekday-name and service-key maps the admin form edits.
func SettingsToResponse(settings entity.ClinicSettings) *dto.SettingsResponse {
	limits := make(map[string]string)
	for _, weekday := range entity.ConfigurableWeekdays() {
		name := entity.WeekdayName(weekday)
		if limit, ok := settings.Limit(weekday); ok {
			limits[name] = strconv.Itoa(limit)
		} else {
			limits[name] = entity.DefaultDailyLimit
		}
	}

	prices := make(map[string]string)
	for _, svc := range entity.ServiceCatalog() {
		prices[svc.Key] = settings.Prices[svc.Key]
	}

	return &dto.SettingsResponse{
		BlockSaturdays: settings.BlockSaturdays,
		BlockSundays:   settings.BlockSundays,
		Limits:         limits,
		Prices:         prices,
	}
}

// ServicesToResponses renders the catalog with its configured prices.
func ServicesToResponses(settings entity.ClinicSettings) []dto.ServiceResponse {
	catalog := entity.ServiceCatalog()
	responses := make([]dto.ServiceResponse, len(catalog))
	for i, svc := range catalog {
		responses[i] = dto.ServiceResponse{
			Key:   svc.Key,
			Name:  svc.Name,
			Price: settings.Prices[svc.Key],
		}
	}
	return responses
}
