package update_entry

// UpdateEntryResponse результат обновления записи
type UpdateEntryResponse struct {
	ID      int64 `json:"id"`
	Updated bool  `json:"updated"`
}
