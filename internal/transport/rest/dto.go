package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

type studentDTO struct {
	StudentID string    `json:"student_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toStudentDTO(s domain.EligibleStudent) studentDTO {
	return studentDTO{
		StudentID: domain.FormatStudentID(s.StudentID),
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type productDTO struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	QuantityLimit     int       `json:"quantity_limit"`
	ActiveStatus      string    `json:"active_status"`
	DownloadLink      *string   `json:"download_link,omitempty"`
	KeyCount          int       `json:"key_count"`
	RemainingKeyCount int       `json:"remaining_key_count"`
	UsedKeyCount      int       `json:"used_key_count"`
}

func toProductDTO(p domain.ProductSummary) productDTO {
	return productDTO{
		ID:                p.ID,
		Name:              p.Name,
		QuantityLimit:     p.QuantityLimit,
		ActiveStatus:      p.ActiveStatus,
		DownloadLink:      p.DownloadLink,
		KeyCount:          p.KeyCount,
		RemainingKeyCount: p.RemainingKeyCount,
		UsedKeyCount:      p.UsedKeyCount,
	}
}

type accountDTO struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	StudentID    string    `json:"student_id,omitempty"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	ActiveStatus string    `json:"active_status"`
	Role         string    `json:"role"`
}

func toAccountDTO(a domain.Account) accountDTO {
	dto := accountDTO{
		ID:           a.ID,
		Email:        a.Email,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		ActiveStatus: a.ActiveStatus,
		Role:         string(a.Role),
	}
	if a.StudentID > 0 {
		dto.StudentID = domain.FormatStudentID(a.StudentID)
	}
	return dto
}

type uploadDTO struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	FileName  string    `json:"file_name"`
	Accepted  int       `json:"accepted"`
	Persisted int       `json:"persisted"`
	Rejected  int       `json:"rejected"`
	CreatedAt time.Time `json:"created_at"`
}

func toUploadDTO(u domain.Upload) uploadDTO {
	return uploadDTO{
		ID:        u.ID,
		Kind:      string(u.Kind),
		FileName:  u.FileName,
		Accepted:  u.Accepted,
		Persisted: u.Persisted,
		Rejected:  u.Rejected,
		CreatedAt: u.CreatedAt,
	}
}

type studentKeyDTO struct {
	Product      string  `json:"product"`
	Key          string  `json:"key"`
	DownloadLink *string `json:"download_link,omitempty"`
}
