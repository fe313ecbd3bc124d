package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// snapshotTx is used for count+fetch pairs so the total matches the page.
var snapshotTx = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

type DirectoryUsecase interface {
	// ListPersonnel lists personnel of one type, or of every type when personnelType is empty.
	ListPersonnel(ctx context.Context, personnelType entity.PersonnelType, query dto.DirectoryQuery) (*dto.ListResponse[dto.PersonnelResponse], error)
	ListPatients(ctx context.Context, query dto.DirectoryQuery) (*dto.ListResponse[dto.PatientResponse], error)
	GetPersonnel(ctx context.Context, id int, personnelType entity.PersonnelType) (*dto.PersonnelResponse, error)
	GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error)
}

type directoryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	personnelRepo repository.PersonnelRepository
	patientRepo   repository.PatientRepository
}

func NewDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	personnelRepo repository.PersonnelRepository,
	patientRepo repository.PatientRepository,
) DirectoryUsecase {
	return &directoryUsecase{
		db:            db,
		log:           log,
		personnelRepo: personnelRepo,
		patientRepo:   patientRepo,
	}
}

func (u *directoryUsecase) ListPersonnel(ctx context.Context, personnelType entity.PersonnelType, query dto.DirectoryQuery) (*dto.ListResponse[dto.PersonnelResponse], error) {
	if personnelType != "" && !personnelType.Valid() {
		return nil, ErrInvalidPersonnelType
	}

	filter := entity.DirectoryFilter{Type: personnelType, Name: query.Name}

	var (
		total     int64
		personnel []entity.Personnel
	)
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if total, err = u.personnelRepo.Count(tx, filter); err != nil {
			return err
		}
		personnel, err = u.personnelRepo.FindAll(tx, filter, query.Page.Take, query.Page.Skip)
		return err
	}, snapshotTx)
	if err != nil {
		u.log.Warnf("Failed to list personnel of type %q: %+v", personnelType, err)
		return nil, fmt.Errorf("list personnel: %w", err)
	}

	return &dto.ListResponse[dto.PersonnelResponse]{
		List:  converter.PersonnelsToResponses(personnel),
		Total: total,
	}, nil
}

func (u *directoryUsecase) ListPatients(ctx context.Context, query dto.DirectoryQuery) (*dto.ListResponse[dto.PatientResponse], error) {
	filter := entity.DirectoryFilter{Name: query.Name}

	var (
		total    int64
		patients []entity.Patient
	)
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if total, err = u.patientRepo.Count(tx, filter); err != nil {
			return err
		}
		patients, err = u.patientRepo.FindAll(tx, filter, query.Page.Take, query.Page.Skip)
		return err
	}, snapshotTx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, fmt.Errorf("list patients: %w", err)
	}

	return &dto.ListResponse[dto.PatientResponse]{
		List:  converter.PatientsToResponses(patients),
		Total: total,
	}, nil
}

func (u *directoryUsecase) GetPersonnel(ctx context.Context, id int, personnelType entity.PersonnelType) (*dto.PersonnelResponse, error) {
	personnel, err := u.personnelRepo.FindByID(u.db.WithContext(ctx), id, personnelType)
	if err != nil {
		u.log.Warnf("Failed to find personnel %d: %+v", id, err)
		return nil, fmt.Errorf("find personnel: %w", err)
	}
	if personnel == nil {
		return nil, personnelNotFound(personnelType)
	}

	return converter.PersonnelToResponse(personnel), nil
}

func (u *directoryUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, fmt.Errorf("find patient: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}
