package usecase

import (
	"context"
	"fmt"
	"strings"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogUsecase serves the reference data staff pick from when booking and
// recording treatments.
type CatalogUsecase interface {
	GetRooms(ctx context.Context) ([]dto.RoomResponse, error)
	GetCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	GetDrugs(ctx context.Context, name string) ([]dto.DrugResponse, error)
	GetTeeth(ctx context.Context) ([]dto.ToothResponse, error)
}

type catalogUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	roomRepo    repository.RoomRepository
	catalogRepo repository.CatalogRepository
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	catalogRepo repository.CatalogRepository,
) CatalogUsecase {
	return &catalogUsecase{
		db:          db,
		log:         log,
		roomRepo:    roomRepo,
		catalogRepo: catalogRepo,
	}
}

func (u *catalogUsecase) GetRooms(ctx context.Context) ([]dto.RoomResponse, error) {
	rooms, err := u.roomRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find rooms: %+v", err)
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	return converter.RoomsToResponses(rooms), nil
}

func (u *catalogUsecase) GetCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := u.catalogRepo.FindCategories(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find categories: %+v", err)
		return nil, fmt.Errorf("find categories: %w", err)
	}
	return converter.CategoriesToResponses(categories), nil
}

func (u *catalogUsecase) GetDrugs(ctx context.Context, name string) ([]dto.DrugResponse, error) {
	drugs, err := u.catalogRepo.FindDrugs(u.db.WithContext(ctx), strings.TrimSpace(name))
	if err != nil {
		u.log.Warnf("Failed to find drugs: %+v", err)
		return nil, fmt.Errorf("find drugs: %w", err)
	}
	return converter.DrugsToResponses(drugs), nil
}

func (u *catalogUsecase) GetTeeth(ctx context.Context) ([]dto.ToothResponse, error) {
	teeth, err := u.catalogRepo.FindTeeth(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find teeth: %+v", err)
		return nil, fmt.Errorf("find teeth: %w", err)
	}
	return converter.TeethToResponses(teeth), nil
}
