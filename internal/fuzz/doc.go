// Package fuzztests houses Go fuzz harnesses that exercise the csub front end
// (source -> scanner). Its goal is to smoke test robustness and guard against
// panics, stalls and span corruption on arbitrary inputs.
//
// Назначение: загружать байты в source.File и прогонять их через сканер,
// проверяя инварианты слов из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag,
// internal/testkit.

package fuzztests
