package utils

import (
	"fmt"
	"strings"
)

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// EscapeLike escape wildcard của ILIKE để user không inject % hoặc _
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`) // Escape backslash first
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// WhereBuilder gom điều kiện WHERE với placeholder $n tăng dần (pgx)
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// Add thêm điều kiện; format chứa đúng một "%d" cho vị trí placeholder
func (w *WhereBuilder) Add(format string, arg interface{}) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(format, len(w.args)))
}

// Clause trả về " WHERE ..." hoặc chuỗi rỗng
func (w *WhereBuilder) Clause() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + JoinWithAnd(w.clauses)
}

func (w *WhereBuilder) Args() []interface{} {
	return w.args
}

// NextArg trả về index placeholder kế tiếp (dùng cho LIMIT/OFFSET)
func (w *WhereBuilder) NextArg() int {
	return len(w.args) + 1
}
