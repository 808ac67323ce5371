package models

// NoticeSeverity flags how a client should present a notice.
type NoticeSeverity string

const (
	SeverityNormal      NoticeSeverity = "normal"
	SeverityDestructive NoticeSeverity = "destructive"
)

// Notice is a short user-facing status message. The display language is
// fixed; titles and descriptions are Traditional Chinese throughout.
type Notice struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Severity    NoticeSeverity `json:"severity"`
}

// Canned notices mirrored from the client-facing copy.
var (
	NoticeRosterLoadFailed = Notice{Title: "錯誤", Description: "無法載入學生或教練資料。請稍後再試。", Severity: SeverityDestructive}
	NoticeLessonAdded      = Notice{Title: "成功", Description: "課程記錄已新增。", Severity: SeverityNormal}
	NoticeLessonDeleted    = Notice{Title: "成功", Description: "課程記錄已刪除。", Severity: SeverityNormal}
	NoticeValidationFailed = Notice{Title: "錯誤", Description: "請填寫所有必要資訊。", Severity: SeverityDestructive}
)
