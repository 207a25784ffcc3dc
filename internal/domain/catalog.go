package domain

// Marca represents a vehicle brand
type Marca struct {
	ID     int64
	Nombre string
}

// Modelo represents a vehicle model of a brand
type Modelo struct {
	ID      int64
	MarcaID int64
	Nombre  string
}

// Categoria represents a vehicle category (SUV, berlina, ...)
type Categoria struct {
	ID     int64
	Nombre string
}

// Provincia represents a Spanish province
type Provincia struct {
	ID     int64
	Nombre string
}

// Catalog bundles the dictionaries needed by the listing forms
type Catalog struct {
	Marcas     []Marca
	Categorias []Categoria
	Provincias []Provincia
}
