package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

func CategoryToResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}

	resp := &dto.CategoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		Procedures: make([]dto.ProcedureResponse, len(c.Procedures)),
	}
	for i, p := range c.Procedures {
		resp.Procedures[i] = dto.ProcedureResponse{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
		}
	}
	return resp
}

func CategoriesToResponses(categories []entity.Category) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *CategoryToResponse(&categories[i])
	}
	return responses
}

func DrugToResponse(d *entity.Drug) *dto.DrugResponse {
	if d == nil {
		return nil
	}
	return &dto.DrugResponse{
		ID:    d.ID,
		Name:  d.Name,
		Unit:  d.Unit,
		Price: d.Price,
	}
}

func DrugsToResponses(drugs []entity.Drug) []dto.DrugResponse {
	responses := make([]dto.DrugResponse, len(drugs))
	for i := range drugs {
		responses[i] = *DrugToResponse(&drugs[i])
	}
	return responses
}

func ToothToResponse(t *entity.Tooth) *dto.ToothResponse {
	if t == nil {
		return nil
	}
	return &dto.ToothResponse{
		ID:       t.ID,
		Name:     t.Name,
		Position: t.Position,
	}
}

func TeethToResponses(teeth []entity.Tooth) []dto.ToothResponse {
	responses := make([]dto.ToothResponse, len(teeth))
	for i := range teeth {
		responses[i] = *ToothToResponse(&teeth[i])
	}
	return responses
}
