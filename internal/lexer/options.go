package lexer

import (
	"csub/internal/diag"
)

type Options struct {
	// Handler получает каждую диагностику; нулевое значение: продолжать всегда.
	Handler diag.Handler
	// MaxDiagnostics limits the bag returned by Collect; 0 means unbounded.
	MaxDiagnostics int
}
