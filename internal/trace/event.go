package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1 // начало операции
	KindSpanEnd                   // конец операции
	KindPoint                     // мгновенное событие (например, диагностика)
	KindHeartbeat                 // периодический сигнал живости
)

var kindNames = [...]string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
	KindHeartbeat: "heartbeat",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Scope indicates the granularity level of the event.
// Lower numeric values represent coarser events.
type Scope uint8

const (
	// ScopeDriver covers whole CLI operations (tokenize a path, diagnose a tree).
	ScopeDriver Scope = iota + 1
	// ScopePass covers stages of one run: load, cache, scan, render.
	ScopePass
	// ScopeFile covers per-file work inside a directory run.
	ScopeFile
	// ScopeDiag marks individual diagnostics.
	ScopeDiag
)

var scopeNames = [...]string{
	ScopeDriver: "driver",
	ScopePass:   "pass",
	ScopeFile:   "file",
	ScopeDiag:   "diag",
}

func (s Scope) String() string {
	if s > 0 && int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64 // глобальный монотонный номер
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корня
	// Lane groups events of one file in a directory run (0 for the main
	// flow); Chrome output maps it to a thread row.
	Lane   uint64
	Name   string // "tokenize", "scan", путь файла
	Detail string
	Extra  map[string]string
}
