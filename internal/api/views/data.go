package views

import "github.com/m04kA/SMC-CarMarketWeb/internal/domain"

// HomeFilter echoes the listing filters back into the search form
type HomeFilter struct {
	Marca       string
	Provincia   string
	Combustible string
	Q           string
}

// HomeData listing grid
type HomeData struct {
	Coches  []*domain.Coche
	Catalog *domain.Catalog
	Filter  HomeFilter
}

// CocheData listing detail
type CocheData struct {
	Coche   *domain.Coche
	IsOwner bool
}

// CocheFormData publish and edit form
type CocheFormData struct {
	Action  string
	Editing bool
	Catalog *domain.Catalog
	Modelos []domain.Modelo
	// Coche is set when editing so images and documents can be managed
	Coche *domain.Coche
}

// ListData seller and admin tables
type ListData struct {
	Coches []*domain.Coche
}
