package model

// Canonical workbook column names. Export writes them in this order.
const (
	ColName     = "Task Name"
	ColID       = "Task ID"
	ColStart    = "Start Date"
	ColEnd      = "End Date"
	ColProgress = "Progress"
	ColParent   = "Parent Task"
	ColCategory = "Category"
	ColStatus   = "Status"
)

// RequiredColumns lists every column a workbook must provide, in export
// order. A missing Status column is synthesized with StatusToDo instead
// of failing the load.
var RequiredColumns = []string{
	ColName, ColID, ColStart, ColEnd,
	ColProgress, ColParent, ColCategory, ColStatus,
}

// HeaderAliases maps the alternate (Japanese) header set 1:1 onto the
// canonical column names. Translation runs before column validation.
var HeaderAliases = map[string]string{
	"項目名":     ColName,
	"タスク管理ID": ColID,
	"開始日":     ColStart,
	"期限":      ColEnd,
	"進捗":      ColProgress,
	"親タスク":    ColParent,
	"カテゴリ":    ColCategory,
	"ステータス":   ColStatus,
}

// RawRow is one undecoded table row keyed by canonical column name.
// Values are the raw cell strings before normalization.
type RawRow map[string]string
