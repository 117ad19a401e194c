package entity

import "time"

// Item is a piece of equipment listed by exactly one owner.
type Item struct {
	ID          int64
	OwnerID     int64 // Owner namespace id, always taken from the session.
	Title       string
	Description string
	Make        string
	Model       string
	ImgURL      string
	DailyCost   float64
	Available   bool
	Condition   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemChanges carries the columns of a partial item update.
type ItemChanges struct {
	Title       *string
	Description *string
	Make        *string
	Model       *string
	ImgURL      *string
	DailyCost   *float64
	Available   *bool
	Condition   *string
}

// IsEmpty reports whether the update touches no column at all.
func (c ItemChanges) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.Make == nil && c.Model == nil &&
		c.ImgURL == nil && c.DailyCost == nil && c.Available == nil && c.Condition == nil
}
