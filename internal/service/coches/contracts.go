package coches

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// CochesAPI интерфейс клиента REST API для объявлений и справочников
type CochesAPI interface {
	ListCoches(ctx context.Context, filter domain.CocheFilter) ([]*domain.Coche, error)
	GetCoche(ctx context.Context, id int64) (*domain.Coche, error)
	ListUserCoches(ctx context.Context, token string) ([]*domain.Coche, error)
	UpdateCoche(ctx context.Context, token string, id int64, in marketapi.CocheInput) (*domain.Coche, error)
	DeleteCoche(ctx context.Context, token string, id int64) error
	VerifyCoche(ctx context.Context, token string, id int64, verificado bool) error

	AddImages(ctx context.Context, token string, cocheID int64, files []marketapi.File) error
	DeleteImage(ctx context.Context, token string, cocheID, imageID int64) error
	AddDocuments(ctx context.Context, token string, cocheID int64, files []marketapi.File) error
	DeleteDocument(ctx context.Context, token string, cocheID, docID int64) error

	ListMarcas(ctx context.Context) ([]domain.Marca, error)
	ListModelos(ctx context.Context, marcaID int64) ([]domain.Modelo, error)
	ListCategorias(ctx context.Context) ([]domain.Categoria, error)
	ListProvincias(ctx context.Context) ([]domain.Provincia, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
