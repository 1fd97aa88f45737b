package model

import (
	"strings"
	"time"
)

type Kind string

const (
	KindBook       Kind = "BOOK"
	KindAudio      Kind = "AUDIO"
	KindPeriodical Kind = "PERIODICAL"
)

// ParseKind normalizes a caller-supplied kind string ("book", "Book", "BOOK").
// The zero Kind is returned for anything outside the closed set.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindBook:
		return KindBook, true
	case KindAudio:
		return KindAudio, true
	case KindPeriodical:
		return KindPeriodical, true
	}
	return "", false
}

// Item is a lendable catalog entry. Kind discriminates the variant; the
// kind-specific fields are meaningful only for the matching Kind and stay at
// their zero values otherwise.
type Item struct {
	ID        int    `json:"id"`
	Kind      Kind   `json:"kind"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`

	PageCount       int  `json:"pageCount,omitempty"`       // KindBook
	PlaybackMinutes int  `json:"playbackMinutes,omitempty"` // KindAudio
	IssueNumber     int  `json:"issueNumber,omitempty"`     // KindPeriodical
	Archived        bool `json:"archived,omitempty"`        // KindPeriodical
}

// Playable is the narrow capability of items that carry recorded audio.
type Playable interface {
	Playback() PlaybackInfo
}

type PlaybackInfo struct {
	Title           string `json:"title"`
	PlaybackMinutes int    `json:"playbackMinutes"`
}

type audioItem struct {
	item Item
}

func (a audioItem) Playback() PlaybackInfo {
	return PlaybackInfo{Title: a.item.Title, PlaybackMinutes: a.item.PlaybackMinutes}
}

// AsPlayable upgrades the item to its Playable capability. Only the audio
// variant satisfies it.
func (i Item) AsPlayable() (Playable, bool) {
	if i.Kind != KindAudio {
		return nil, false
	}
	return audioItem{item: i}, true
}

// LendingRecord is one loan, active while ActualReturnDate is nil.
type LendingRecord struct {
	RecordUid          string     `json:"recordUid"`
	ItemID             int        `json:"itemId"`
	BorrowerID         int        `json:"borrowerId"`
	BorrowDate         time.Time  `json:"borrowDate"`
	ExpectedReturnDate time.Time  `json:"expectedReturnDate"`
	ActualReturnDate   *time.Time `json:"actualReturnDate,omitempty"`
}

// ReturnReceipt reports the outcome of closing a loan.
type ReturnReceipt struct {
	Record      LendingRecord `json:"record"`
	OverdueDays int           `json:"overdueDays"`
	Fine        float64       `json:"fine"`
}

type EventType string

const (
	EventItemBorrowed EventType = "ITEM_BORROWED"
	EventItemReturned EventType = "ITEM_RETURNED"
)

// LendingEvent is the structured record of a borrow or return, emitted for
// logging and for the stats pipeline.
type LendingEvent struct {
	EventType   EventType `json:"eventType"`
	RecordUid   string    `json:"recordUid"`
	ItemID      int       `json:"itemId"`
	BorrowerID  int       `json:"borrowerId"`
	Days        int       `json:"days,omitempty"`
	OverdueDays int       `json:"overdueDays,omitempty"`
	Fine        float64   `json:"fine,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type AddItemRequest struct {
	ID              int    `json:"id" validate:"gte=0"`
	Kind            string `json:"kind" validate:"required"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PageCount       int    `json:"pageCount" validate:"gte=0"`
	PlaybackMinutes int    `json:"playbackMinutes" validate:"gte=0"`
	IssueNumber     int    `json:"issueNumber" validate:"gte=0"`
}

type BorrowRequest struct {
	BorrowerID int    `json:"borrowerId" validate:"gte=0"`
	Duration   string `json:"duration" validate:"required"`
}
