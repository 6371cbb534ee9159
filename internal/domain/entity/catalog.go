package entity

// Service catalog keys. These are the stored values of Appointment.Reason and
// the suffixes of the per-service price settings (precio_<key>). The set is
// fixed; the admin screen only edits prices, never the catalog itself.
const (
	ServiceGynecological = "ginecologica"
	ServiceBreast        = "mama"
	ServicePostSurgical  = "post"
	ServiceBiopsy        = "biopsia"
	ServiceResults       = "resultados"
)

// CatalogService pairs a catalog key with its display name.
type CatalogService struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ServiceCatalog lists every visit reason the clinic offers, in display order.
func ServiceCatalog() []CatalogService {
	return []CatalogService{
		{Key: ServiceGynecological, Name: "Consulta ginecológica"},
		{Key: ServiceBreast, Name: "Consulta de mama"},
		{Key: ServicePostSurgical, Name: "Post quirúrgico"},
		{Key: ServiceBiopsy, Name: "Biopsia"},
		{Key: ServiceResults, Name: "Entrega de resultados"},
	}
}

// ValidServiceKey reports whether key belongs to the catalog.
func ValidServiceKey(key string) bool {
	for _, s := range ServiceCatalog() {
		if s.Key == key {
			return true
		}
	}
	return false
}
