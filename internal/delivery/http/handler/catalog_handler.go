package handler

import (
	"net/http"

	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
	}
}

func (h *CatalogHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.catalogUsecase.GetRooms(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get rooms")
		return
	}

	response.Success(w, http.StatusOK, rooms)
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUsecase.GetCategories(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get categories")
		return
	}

	response.Success(w, http.StatusOK, categories)
}

func (h *CatalogHandler) GetDrugs(w http.ResponseWriter, r *http.Request) {
	drugs, err := h.catalogUsecase.GetDrugs(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, err, "Failed to get drugs")
		return
	}

	response.Success(w, http.StatusOK, drugs)
}

func (h *CatalogHandler) GetTeeth(w http.ResponseWriter, r *http.Request) {
	teeth, err := h.catalogUsecase.GetTeeth(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get teeth")
		return
	}

	response.Success(w, http.StatusOK, teeth)
}
