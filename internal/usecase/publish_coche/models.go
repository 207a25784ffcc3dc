package publish_coche

import (
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// Request модель запроса на публикацию объявления
type Request struct {
	Token     string               // токен сессии продавца
	Input     marketapi.CocheInput // поля объявления (уже провалидированы формой)
	Images    []marketapi.File     // поле imagenes
	Documents []marketapi.File     // поле documentos
}

// Response модель ответа после публикации
type Response struct {
	ID    int64
	Coche *domain.Coche
}
