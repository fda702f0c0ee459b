package entity

import "time"

const (
	DefaultStoreIcon       = "Store"
	DefaultStoreThemeColor = "#3b82f6"
)

type Store struct {
	Id          int
	Name        string
	Icon        string
	ThemeColor  string
	Description string
	Categories  []string
	CreatedAt   time.Time
}

// Clone returns a copy that shares no slices with s.
func (s Store) Clone() Store {
	out := s
	out.Categories = append([]string(nil), s.Categories...)
	return out
}
