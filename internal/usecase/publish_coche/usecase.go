package publish_coche

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// UseCase use case публикации объявления с изображениями и документами
type UseCase struct {
	api    CochesAPI
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(api CochesAPI, logger Logger) *UseCase {
	return &UseCase{
		api:    api,
		logger: logger,
	}
}

// Execute проверяет файлы и отправляет объявление одним multipart запросом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PublishCoche: marca=%d, modelo=%d, images=%d, documents=%d",
		req.Input.MarcaID, req.Input.ModeloID, len(req.Images), len(req.Documents))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PublishCoche: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем файлы под именами полей, которые ждет API
	files := make([]marketapi.File, 0, len(req.Images)+len(req.Documents))
	for _, f := range req.Images {
		f.FieldName = marketapi.FieldImagenes
		files = append(files, f)
	}
	for _, f := range req.Documents {
		f.FieldName = marketapi.FieldDocumentos
		files = append(files, f)
	}

	// 3. Создаем объявление
	coche, err := uc.api.CreateCoche(ctx, req.Token, req.Input, files)
	if err != nil {
		switch {
		case errors.Is(err, marketapi.ErrUnauthorized):
			uc.logger.Warn("PublishCoche: token rejected by API")
			return nil, fmt.Errorf("%w: CreateCoche", ErrUnauthorized)
		case errors.Is(err, marketapi.ErrForbidden):
			uc.logger.Warn("PublishCoche: user is not allowed to publish")
			return nil, fmt.Errorf("%w: CreateCoche", ErrForbidden)
		case errors.Is(err, marketapi.ErrBadRequest), errors.Is(err, marketapi.ErrConflict):
			uc.logger.Warn("PublishCoche: listing rejected: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		default:
			uc.logger.Error("PublishCoche: API error: %v", err)
			return nil, fmt.Errorf("%w: CreateCoche - API error: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("PublishCoche: listing id=%d created", coche.ID)
	return &Response{ID: coche.ID, Coche: coche}, nil
}
