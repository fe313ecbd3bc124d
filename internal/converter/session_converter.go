package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// SessionToResponse converts a Session entity and its loaded relations to SessionResponse DTO
func SessionToResponse(s *entity.Session) *dto.SessionResponse {
	if s == nil {
		return nil
	}

	return &dto.SessionResponse{
		ID:          s.ID,
		PatientID:   s.PatientID,
		DentistID:   s.DentistID,
		AssistantID: s.AssistantID,
		RoomID:      s.RoomID,
		Note:        s.Note,
		Time:        s.Time,
		Type:        string(s.Type),
		Status:      string(s.Status),
		Patient:     PatientToResponse(s.Patient),
		Dentist:     PersonnelToResponse(s.Dentist),
		Assistant:   PersonnelToResponse(s.Assistant),
		Room:        RoomToResponse(s.Room),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// SessionsToResponses converts a slice of Session entities to slice of SessionResponse DTOs
func SessionsToResponses(sessions []entity.Session) []dto.SessionResponse {
	responses := make([]dto.SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = *SessionToResponse(&sessions[i])
	}
	return responses
}

// TreatmentSessionToResponse converts a TreatmentSession with its clinical and billing records
func TreatmentSessionToResponse(t *entity.TreatmentSession) *dto.TreatmentSessionResponse {
	if t == nil {
		return nil
	}

	resp := &dto.TreatmentSessionResponse{
		ID:             t.ID,
		SessionID:      t.SessionID,
		Diagnosis:      t.Diagnosis,
		Session:        SessionToResponse(t.Session),
		Category:       CategoryToResponse(t.Category),
		Prescriptions:  make([]dto.PrescriptionResponse, len(t.Prescriptions)),
		ToothSessions:  make([]dto.ToothSessionResponse, len(t.ToothSessions)),
		PaymentRecords: make([]dto.PaymentRecordResponse, len(t.PaymentRecords)),
		TotalPaid:      t.TotalPaid(),
		CreatedAt:      t.CreatedAt,
	}

	for i, p := range t.Prescriptions {
		resp.Prescriptions[i] = dto.PrescriptionResponse{
			ID:       p.ID,
			DrugID:   p.DrugID,
			Drug:     DrugToResponse(p.Drug),
			Quantity: p.Quantity,
			Dosage:   p.Dosage,
			Note:     p.Note,
		}
	}
	for i, ts := range t.ToothSessions {
		resp.ToothSessions[i] = dto.ToothSessionResponse{
			ID:      ts.ID,
			ToothID: ts.ToothID,
			Tooth:   ToothToResponse(ts.Tooth),
			Note:    ts.Note,
		}
	}
	for i, pr := range t.PaymentRecords {
		resp.PaymentRecords[i] = dto.PaymentRecordResponse{
			ID:     pr.ID,
			Amount: pr.Amount,
			Method: pr.Method,
			Note:   pr.Note,
			PaidAt: pr.PaidAt,
		}
	}
	return resp
}
