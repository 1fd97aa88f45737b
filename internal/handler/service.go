package handler

import (
	"context"

	"github.com/dkruglov/lending-service/internal/model"
	"github.com/dkruglov/lending-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	AddItem(ctx context.Context, item model.Item) (model.Item, error)
	Borrow(ctx context.Context, itemID, borrowerID int, durationText string) (model.LendingRecord, model.LendingEvent, error)
	Return(ctx context.Context, itemID int) (model.ReturnReceipt, model.LendingEvent, error)
	ArchiveIssue(ctx context.Context, itemID int) (model.Item, error)
	Play(ctx context.Context, itemID int) (model.PlaybackInfo, error)
	Item(ctx context.Context, itemID int) (model.Item, error)
	Items(ctx context.Context) ([]model.Item, error)
	SearchByKind(ctx context.Context, kind string) ([]model.Item, error)
	SearchByTitle(ctx context.Context, keyword string) ([]model.Item, error)
	ActiveLoans(ctx context.Context) ([]model.LendingRecord, error)
	Fines(ctx context.Context) (map[int]float64, error)
}

var _ CatalogService = (*service.Service)(nil)
