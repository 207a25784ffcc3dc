package domain

// Form validation constants
const (
	MinPasswordLength     = 8
	MinAnio               = 1900
	MaxKilometraje        = 2000000
	MaxPrecio             = 10000000
	MaxDescripcionLen     = 5000
	MaxImagesPerUpload    = 20
	MaxDocumentsPerUpload = 10
	MaxUploadSize         = 32 << 20 // 32 MiB
)

// Route paths used by guards and redirects
const (
	RouteHome  = "/"
	RouteLogin = "/login"
)
