package token

// Keyword is the sub-tag carried by words of Kind Kw.
type Keyword uint8

const (
	// NoKeyword is used by every Category whose Kind is not Kw.
	NoKeyword Keyword = iota
	KwElse            // else
	KwIf              // if
	KwInt             // int
	KwReturn          // return
	KwVoid            // void
	KwWhile           // while
)

var keywords = map[string]Keyword{
	"else":   KwElse,
	"if":     KwIf,
	"int":    KwInt,
	"return": KwReturn,
	"void":   KwVoid,
	"while":  KwWhile,
}

var keywordNames = [...]string{
	NoKeyword: "",
	KwElse:    "Else",
	KwIf:      "If",
	KwInt:     "Int",
	KwReturn:  "Return",
	KwVoid:    "Void",
	KwWhile:   "While",
}

func (k Keyword) String() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return "Keyword(?)"
}

// LookupKeyword возвращает ключевое слово и true, если ident им является.
// Сравнение точное и регистрозависимое: "Else": обычный идентификатор.
func LookupKeyword(ident string) (Keyword, bool) {
	k, ok := keywords[ident]
	return k, ok
}
