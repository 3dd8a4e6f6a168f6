package models

// NoticeRecord is a board announcement. NoticeDate is a display string
// ("02 January") with the year dropped.
type NoticeRecord struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	NoticeDate string `json:"notice_date"`
}
