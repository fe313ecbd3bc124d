package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// PersonnelToResponse converts a Personnel entity to PersonnelResponse DTO
func PersonnelToResponse(p *entity.Personnel) *dto.PersonnelResponse {
	if p == nil {
		return nil
	}

	return &dto.PersonnelResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      string(p.Type),
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PersonnelsToResponses converts a slice of Personnel entities to slice of PersonnelResponse DTOs
func PersonnelsToResponses(personnel []entity.Personnel) []dto.PersonnelResponse {
	responses := make([]dto.PersonnelResponse, len(personnel))
	for i := range personnel {
		responses[i] = *PersonnelToResponse(&personnel[i])
	}
	return responses
}

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Email:     p.Email,
		Gender:    p.Gender,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.DateOfBirth != nil {
		resp.DateOfBirth = p.DateOfBirth.Format("2006-01-02")
	}
	return resp
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

func RoomToResponse(r *entity.Room) *dto.RoomResponse {
	if r == nil {
		return nil
	}
	return &dto.RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = *RoomToResponse(&rooms[i])
	}
	return responses
}
