package coches

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// Service сервис объявлений: витрина, кабинет продавца и модерация
type Service struct {
	api    CochesAPI
	logger Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(api CochesAPI, logger Logger) *Service {
	return &Service{
		api:    api,
		logger: logger,
	}
}

// List возвращает объявления витрины с фильтрами
func (s *Service) List(ctx context.Context, filter domain.CocheFilter) ([]*domain.Coche, error) {
	items, err := s.api.ListCoches(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to fetch listings: %v", err)
		return nil, mapError("List", err)
	}
	return items, nil
}

// Get возвращает объявление по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.Coche, error) {
	item, err := s.api.GetCoche(ctx, id)
	if err != nil {
		s.logger.Warn("Get: failed to fetch listing id=%d: %v", id, err)
		return nil, mapError("Get", err)
	}
	return item, nil
}

// GetOwn возвращает объявление, только если оно принадлежит продавцу
func (s *Service) GetOwn(ctx context.Context, userID, id int64) (*domain.Coche, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.IsOwnedBy(userID) {
		s.logger.Warn("GetOwn: user id=%d is not the owner of listing id=%d", userID, id)
		return nil, fmt.Errorf("%w: GetOwn - listing id=%d", ErrForbidden, id)
	}
	return item, nil
}

// ListOwn возвращает объявления текущего продавца
func (s *Service) ListOwn(ctx context.Context, token string) ([]*domain.Coche, error) {
	items, err := s.api.ListUserCoches(ctx, token)
	if err != nil {
		s.logger.Error("ListOwn: failed to fetch seller listings: %v", err)
		return nil, mapError("ListOwn", err)
	}
	return items, nil
}

// ListForModeration возвращает все объявления для панели администратора
func (s *Service) ListForModeration(ctx context.Context) ([]*domain.Coche, error) {
	items, err := s.api.ListCoches(ctx, domain.CocheFilter{})
	if err != nil {
		s.logger.Error("ListForModeration: failed to fetch listings: %v", err)
		return nil, mapError("ListForModeration", err)
	}
	return items, nil
}

// Update сохраняет изменения объявления
func (s *Service) Update(ctx context.Context, token string, id int64, in marketapi.CocheInput) (*domain.Coche, error) {
	item, err := s.api.UpdateCoche(ctx, token, id, in)
	if err != nil {
		s.logger.Warn("Update: failed to update listing id=%d: %v", id, err)
		return nil, mapError("Update", err)
	}
	s.logger.Info("Update: listing id=%d updated", id)
	return item, nil
}

// Delete удаляет объявление
func (s *Service) Delete(ctx context.Context, token string, id int64) error {
	if err := s.api.DeleteCoche(ctx, token, id); err != nil {
		s.logger.Warn("Delete: failed to delete listing id=%d: %v", id, err)
		return mapError("Delete", err)
	}
	s.logger.Info("Delete: listing id=%d deleted", id)
	return nil
}

// Verify меняет отметку проверки объявления
func (s *Service) Verify(ctx context.Context, token string, id int64, verificado bool) error {
	if err := s.api.VerifyCoche(ctx, token, id, verificado); err != nil {
		s.logger.Warn("Verify: failed to set verificado=%t on listing id=%d: %v", verificado, id, err)
		return mapError("Verify", err)
	}
	s.logger.Info("Verify: listing id=%d verificado=%t", id, verificado)
	return nil
}

// AddImages загружает изображения к объявлению
func (s *Service) AddImages(ctx context.Context, token string, id int64, files []marketapi.File) error {
	if err := s.api.AddImages(ctx, token, id, files); err != nil {
		s.logger.Warn("AddImages: failed for listing id=%d: %v", id, err)
		return mapError("AddImages", err)
	}
	s.logger.Info("AddImages: %d image(s) added to listing id=%d", len(files), id)
	return nil
}

// DeleteImage удаляет изображение объявления
func (s *Service) DeleteImage(ctx context.Context, token string, id, imageID int64) error {
	if err := s.api.DeleteImage(ctx, token, id, imageID); err != nil {
		s.logger.Warn("DeleteImage: failed for listing id=%d image id=%d: %v", id, imageID, err)
		return mapError("DeleteImage", err)
	}
	return nil
}

// AddDocuments загружает документы к объявлению
func (s *Service) AddDocuments(ctx context.Context, token string, id int64, files []marketapi.File) error {
	if err := s.api.AddDocuments(ctx, token, id, files); err != nil {
		s.logger.Warn("AddDocuments: failed for listing id=%d: %v", id, err)
		return mapError("AddDocuments", err)
	}
	s.logger.Info("AddDocuments: %d document(s) added to listing id=%d", len(files), id)
	return nil
}

// DeleteDocument удаляет документ объявления
func (s *Service) DeleteDocument(ctx context.Context, token string, id, docID int64) error {
	if err := s.api.DeleteDocument(ctx, token, id, docID); err != nil {
		s.logger.Warn("DeleteDocument: failed for listing id=%d document id=%d: %v", id, docID, err)
		return mapError("DeleteDocument", err)
	}
	return nil
}

// Catalog загружает справочники для форм объявления
func (s *Service) Catalog(ctx context.Context) (*domain.Catalog, error) {
	marcas, err := s.api.ListMarcas(ctx)
	if err != nil {
		s.logger.Error("Catalog: failed to fetch marcas: %v", err)
		return nil, mapError("Catalog", err)
	}

	categorias, err := s.api.ListCategorias(ctx)
	if err != nil {
		s.logger.Error("Catalog: failed to fetch categorias: %v", err)
		return nil, mapError("Catalog", err)
	}

	provincias, err := s.api.ListProvincias(ctx)
	if err != nil {
		s.logger.Error("Catalog: failed to fetch provincias: %v", err)
		return nil, mapError("Catalog", err)
	}

	return &domain.Catalog{
		Marcas:     marcas,
		Categorias: categorias,
		Provincias: provincias,
	}, nil
}

// Modelos возвращает модели марки
func (s *Service) Modelos(ctx context.Context, marcaID int64) ([]domain.Modelo, error) {
	items, err := s.api.ListModelos(ctx, marcaID)
	if err != nil {
		s.logger.Warn("Modelos: failed for marca id=%d: %v", marcaID, err)
		return nil, mapError("Modelos", err)
	}
	return items, nil
}
