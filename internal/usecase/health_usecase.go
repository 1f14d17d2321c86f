package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	contactUC domain.ContactUsecase
}

func NewHealthUsecase(contactUC domain.ContactUsecase) HealthUsecase {
	return &healthUsecase{contactUC: contactUC}
}

// Check reports liveness plus whether contact delivery is configured.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	contact := "configured"
	if err := u.contactUC.CheckConfigured(); err != nil {
		contact = "not_configured"
	}

	return map[string]string{
		"status":  "ok",
		"contact": contact,
	}
}
