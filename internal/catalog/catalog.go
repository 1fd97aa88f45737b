// Package catalog owns the lending state machine: the registered items, the
// active loans keyed by item id, the per-borrower fine ledger and the loan
// history. All mutations go through one mutex so the availability check and
// the record insert on borrow are a single atomic step.
package catalog

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dkruglov/lending-service/internal/duration"
	"github.com/dkruglov/lending-service/internal/errs"
	"github.com/dkruglov/lending-service/internal/model"
)

const DefaultFinePerDay = 10.0

type Catalog struct {
	mu         sync.RWMutex
	items      map[int]model.Item
	order      []int // insertion order of item ids
	active     map[int]model.LendingRecord
	history    []model.LendingRecord
	fines      map[int]float64
	finePerDay float64
	now        func() time.Time
}

type Option func(*Catalog)

// WithClock overrides the wall clock, used by tests to simulate elapsed days.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

func New(finePerDay float64, opts ...Option) *Catalog {
	if finePerDay < 0 {
		finePerDay = DefaultFinePerDay
	}
	c := &Catalog{
		items:      make(map[int]model.Item),
		active:     make(map[int]model.LendingRecord),
		fines:      make(map[int]float64),
		finePerDay: finePerDay,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddItem registers the item and marks it available. The id must be unused.
func (c *Catalog) AddItem(item model.Item) (model.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[item.ID]; ok {
		return model.Item{}, errors.Wrapf(errs.ErrDuplicateID, "id %d", item.ID)
	}
	item.Available = true
	c.items[item.ID] = item
	c.order = append(c.order, item.ID)
	return item, nil
}

// Borrow lends the item to borrowerID for the parsed duration. On any failure
// no state changes: a bad duration leaves the item available and records no
// loan.
func (c *Catalog) Borrow(itemID, borrowerID int, durationText string) (model.LendingRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[itemID]
	if !ok {
		return model.LendingRecord{}, errors.Wrapf(errs.ErrNotFound, "id %d", itemID)
	}
	if !item.Available {
		return model.LendingRecord{}, errors.Wrapf(errs.ErrAlreadyBorrowed, "id %d", itemID)
	}

	days, err := duration.Parse(durationText)
	if err != nil {
		return model.LendingRecord{}, err
	}

	borrowDate := c.now()
	record := model.LendingRecord{
		RecordUid:          uuid.New().String(),
		ItemID:             itemID,
		BorrowerID:         borrowerID,
		BorrowDate:         borrowDate,
		ExpectedReturnDate: borrowDate.AddDate(0, 0, days),
	}

	item.Available = false
	c.items[itemID] = item
	c.active[itemID] = record
	return record, nil
}

// Return closes the active loan on itemID, assesses the late fine and restores
// availability. Overdue days count whole elapsed days past the allowed whole
// days; fractions of a day are truncated, never rounded up.
func (c *Catalog) Return(itemID int) (model.ReturnReceipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.active[itemID]
	if !ok {
		return model.ReturnReceipt{}, errors.Wrapf(errs.ErrNotReturnable, "id %d", itemID)
	}
	delete(c.active, itemID)

	returnDate := c.now()
	record.ActualReturnDate = &returnDate
	c.history = append(c.history, record)

	allowedDays := wholeDays(record.ExpectedReturnDate.Sub(record.BorrowDate))
	actualDays := wholeDays(returnDate.Sub(record.BorrowDate))
	overdue := actualDays - allowedDays
	if overdue < 0 {
		overdue = 0
	}
	fine := float64(overdue) * c.finePerDay
	if fine > 0 {
		c.fines[record.BorrowerID] += fine
	}

	if item, ok := c.items[itemID]; ok {
		item.Available = true
		c.items[itemID] = item
	}

	return model.ReturnReceipt{Record: record, OverdueDays: overdue, Fine: fine}, nil
}

// ArchiveIssue flags a periodical's issue as archived. Availability is not
// affected.
func (c *Catalog) ArchiveIssue(itemID int) (model.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[itemID]
	if !ok {
		return model.Item{}, errors.Wrapf(errs.ErrNotFound, "id %d", itemID)
	}
	if item.Kind != model.KindPeriodical {
		return model.Item{}, errors.Wrapf(errs.ErrNotPeriodical, "id %d is %s", itemID, item.Kind)
	}
	item.Archived = true
	c.items[itemID] = item
	return item, nil
}

// Play resolves the item's playable capability.
func (c *Catalog) Play(itemID int) (model.PlaybackInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[itemID]
	if !ok {
		return model.PlaybackInfo{}, errors.Wrapf(errs.ErrNotFound, "id %d", itemID)
	}
	playable, ok := item.AsPlayable()
	if !ok {
		return model.PlaybackInfo{}, errors.Wrapf(errs.ErrNotPlayable, "id %d is %s", itemID, item.Kind)
	}
	return playable.Playback(), nil
}

// Item returns the item by id.
func (c *Catalog) Item(itemID int) (model.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[itemID]
	if !ok {
		return model.Item{}, errors.Wrapf(errs.ErrNotFound, "id %d", itemID)
	}
	return item, nil
}

// Items lists every item in insertion order.
func (c *Catalog) Items() []model.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listLocked(func(model.Item) bool { return true })
}

// SearchByKind filters items by kind, case-insensitively.
func (c *Catalog) SearchByKind(kind string) []model.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listLocked(func(item model.Item) bool {
		return strings.EqualFold(string(item.Kind), strings.TrimSpace(kind))
	})
}

// SearchByTitle filters items whose title contains the keyword,
// case-insensitively.
func (c *Catalog) SearchByTitle(keyword string) []model.Item {
	needle := strings.ToLower(keyword)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listLocked(func(item model.Item) bool {
		return strings.Contains(strings.ToLower(item.Title), needle)
	})
}

// ActiveLoans lists open lending records ordered by item id.
func (c *Catalog) ActiveLoans() []model.LendingRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	loans := make([]model.LendingRecord, 0, len(c.active))
	for _, record := range c.active {
		loans = append(loans, record)
	}
	sort.Slice(loans, func(i, j int) bool { return loans[i].ItemID < loans[j].ItemID })
	return loans
}

// LoanHistory lists closed lending records in return order.
func (c *Catalog) LoanHistory() []model.LendingRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	history := make([]model.LendingRecord, len(c.history))
	copy(history, c.history)
	return history
}

// Fines returns a copy of the per-borrower outstanding fine ledger.
func (c *Catalog) Fines() map[int]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fines := make(map[int]float64, len(c.fines))
	for borrowerID, amount := range c.fines {
		fines[borrowerID] = amount
	}
	return fines
}

func (c *Catalog) listLocked(match func(model.Item) bool) []model.Item {
	items := make([]model.Item, 0, len(c.order))
	for _, id := range c.order {
		if item := c.items[id]; match(item) {
			items = append(items, item)
		}
	}
	return items
}

// wholeDays truncates d to whole 24h days, matching calendar-day subtraction.
func wholeDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}
