package list_modelos

import "github.com/m04kA/SMC-CarMarketWeb/internal/domain"

// ModeloResponse HTTP response model
type ModeloResponse struct {
	ID      int64  `json:"id"`
	MarcaID int64  `json:"marcaId"`
	Nombre  string `json:"nombre"`
}

// FromDomain конвертирует модели марки в HTTP response
func FromDomain(items []domain.Modelo) []ModeloResponse {
	out := make([]ModeloResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ModeloResponse{ID: m.ID, MarcaID: m.MarcaID, Nombre: m.Nombre})
	}
	return out
}
