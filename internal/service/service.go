package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dkruglov/lending-service/internal/catalog"
	"github.com/dkruglov/lending-service/internal/model"
)

type Service struct {
	log     *zap.Logger
	catalog *catalog.Catalog
}

func NewService(cat *catalog.Catalog, log *zap.Logger) *Service {
	return &Service{
		log:     log,
		catalog: cat,
	}
}

func (s *Service) AddItem(_ context.Context, item model.Item) (model.Item, error) {
	added, err := s.catalog.AddItem(item)
	if err != nil {
		return model.Item{}, err
	}
	s.log.Info("item added",
		zap.Int("itemId", added.ID),
		zap.String("kind", string(added.Kind)),
		zap.String("title", added.Title))
	return added, nil
}

// Borrow lends the item and returns the structured lending event alongside the
// record, so callers may log or publish it.
func (s *Service) Borrow(_ context.Context, itemID, borrowerID int, durationText string) (model.LendingRecord, model.LendingEvent, error) {
	record, err := s.catalog.Borrow(itemID, borrowerID, durationText)
	if err != nil {
		return model.LendingRecord{}, model.LendingEvent{}, err
	}
	event := model.LendingEvent{
		EventType:  model.EventItemBorrowed,
		RecordUid:  record.RecordUid,
		ItemID:     record.ItemID,
		BorrowerID: record.BorrowerID,
		Days:       wholeDaysBetween(record),
		OccurredAt: record.BorrowDate,
	}
	s.log.Info("item borrowed",
		zap.Int("itemId", event.ItemID),
		zap.Int("borrowerId", event.BorrowerID),
		zap.Int("days", event.Days),
		zap.String("recordUid", event.RecordUid))
	return record, event, nil
}

func (s *Service) Return(_ context.Context, itemID int) (model.ReturnReceipt, model.LendingEvent, error) {
	receipt, err := s.catalog.Return(itemID)
	if err != nil {
		return model.ReturnReceipt{}, model.LendingEvent{}, err
	}
	event := model.LendingEvent{
		EventType:   model.EventItemReturned,
		RecordUid:   receipt.Record.RecordUid,
		ItemID:      receipt.Record.ItemID,
		BorrowerID:  receipt.Record.BorrowerID,
		OverdueDays: receipt.OverdueDays,
		Fine:        receipt.Fine,
		OccurredAt:  *receipt.Record.ActualReturnDate,
	}
	if receipt.Fine > 0 {
		s.log.Info("item returned late",
			zap.Int("itemId", event.ItemID),
			zap.Int("borrowerId", event.BorrowerID),
			zap.Int("overdueDays", event.OverdueDays),
			zap.Float64("fine", event.Fine))
	} else {
		s.log.Info("item returned on time",
			zap.Int("itemId", event.ItemID),
			zap.Int("borrowerId", event.BorrowerID))
	}
	return receipt, event, nil
}

func (s *Service) ArchiveIssue(_ context.Context, itemID int) (model.Item, error) {
	item, err := s.catalog.ArchiveIssue(itemID)
	if err != nil {
		return model.Item{}, err
	}
	s.log.Info("issue archived",
		zap.Int("itemId", item.ID),
		zap.Int("issueNumber", item.IssueNumber),
		zap.String("title", item.Title))
	return item, nil
}

func (s *Service) Play(_ context.Context, itemID int) (model.PlaybackInfo, error) {
	return s.catalog.Play(itemID)
}

func (s *Service) Item(_ context.Context, itemID int) (model.Item, error) {
	return s.catalog.Item(itemID)
}

func (s *Service) Items(_ context.Context) ([]model.Item, error) {
	return s.catalog.Items(), nil
}

func (s *Service) SearchByKind(_ context.Context, kind string) ([]model.Item, error) {
	return s.catalog.SearchByKind(kind), nil
}

func (s *Service) SearchByTitle(_ context.Context, keyword string) ([]model.Item, error) {
	return s.catalog.SearchByTitle(keyword), nil
}

func (s *Service) ActiveLoans(_ context.Context) ([]model.LendingRecord, error) {
	return s.catalog.ActiveLoans(), nil
}

func (s *Service) Fines(_ context.Context) (map[int]float64, error) {
	return s.catalog.Fines(), nil
}

func wholeDaysBetween(record model.LendingRecord) int {
	return int(record.ExpectedReturnDate.Sub(record.BorrowDate) / (24 * time.Hour))
}
