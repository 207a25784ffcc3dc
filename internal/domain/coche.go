package domain

import "time"

// FuelType represents the fuel type of a vehicle
type FuelType string

const (
	FuelGasolina  FuelType = "gasolina"
	FuelDiesel    FuelType = "diesel"
	FuelHibrido   FuelType = "hibrido"
	FuelElectrico FuelType = "electrico"
	FuelGLP       FuelType = "glp"
)

// FuelTypes lists every fuel type accepted by the listing form
var FuelTypes = []FuelType{FuelGasolina, FuelDiesel, FuelHibrido, FuelElectrico, FuelGLP}

// IsValid returns true if the fuel type is known
func (f FuelType) IsValid() bool {
	for _, known := range FuelTypes {
		if f == known {
			return true
		}
	}
	return false
}

// Coche represents a vehicle-for-sale listing
type Coche struct {
	ID          int64
	VendedorID  int64
	MarcaID     int64
	Marca       string
	ModeloID    int64
	Modelo      string
	CategoriaID int64
	Categoria   string
	ProvinciaID int64
	Provincia   string
	Anio        int
	Kilometraje int
	Precio      float64
	Combustible FuelType
	Descripcion string
	Imagenes    []Imagen
	Documentos  []Documento
	Verificado  bool
	Vendido     bool
	CreatedAt   time.Time
}

// Title returns the brand and model of the listing
func (c *Coche) Title() string {
	return c.Marca + " " + c.Modelo
}

// CoverURL returns the first image of the listing or an empty string
func (c *Coche) CoverURL() string {
	if len(c.Imagenes) == 0 {
		return ""
	}
	return c.Imagenes[0].URL
}

// IsOwnedBy returns true if the listing belongs to the given seller
func (c *Coche) IsOwnedBy(userID int64) bool {
	return userID != 0 && c.VendedorID == userID
}

// Imagen represents an image attached to a listing
type Imagen struct {
	ID  int64
	URL string
}

// Documento represents a document attached to a listing (ITV, ficha técnica, ...)
type Documento struct {
	ID     int64
	Nombre string
	URL    string
}

// CocheFilter holds the listing filters accepted by the home page
type CocheFilter struct {
	MarcaID     *int64
	ProvinciaID *int64
	Combustible *FuelType
	Query       string
}
