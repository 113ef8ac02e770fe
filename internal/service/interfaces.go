package service

import (
	"context"

	"github.com/alexanderramin/peak/internal/contract"
)

type PlanService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type CatalogService interface {
	Catalog(ctx context.Context) (*contract.CatalogResponse, error)
}
