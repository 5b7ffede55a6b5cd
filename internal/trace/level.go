package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // трассировка выключена
	LevelError               // только driver-спаны, чтобы было что выгрузить при сбое
	LevelPhase               // driver + стадии
	LevelDetail              // + по файлам
	LevelDebug               // всё, включая отдельные диагностики
)

// levelInfo: имя уровня и самый детальный scope, который он пропускает.
var levelInfo = [...]struct {
	name     string
	maxScope Scope
}{
	LevelOff:    {"off", 0},
	LevelError:  {"error", ScopeDriver},
	LevelPhase:  {"phase", ScopePass},
	LevelDetail: {"detail", ScopeFile},
	LevelDebug:  {"debug", ScopeDiag},
}

func (l Level) String() string {
	if int(l) < len(levelInfo) {
		return levelInfo[l].name
	}
	return "unknown"
}

// ParseLevel converts a flag value to a Level (case-insensitive).
func ParseLevel(s string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for l, info := range levelInfo {
		if info.name == want {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
}

// ShouldEmit reports whether events of scope pass this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levelInfo) || scope == 0 {
		return false
	}
	return scope <= levelInfo[l].maxScope
}
