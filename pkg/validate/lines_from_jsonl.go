package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
)

// JSONLResult — статистика разбора потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
	// Errors — причины отказа по номерам строк файла (с 1).
	Errors map[int]string
}

// LinesFromJSONL — читает JSONL построчно, валидные строки корзины возвращает, невалидные считает.
// Пустые строки пропускаются.
func LinesFromJSONL(ctx context.Context, validator ports.LineValidator, ir io.Reader) ([]domain.CartLineInput, JSONLResult, error) {
	res := JSONLResult{Errors: map[int]string{}}
	var lines []domain.CartLineInput

	scanner := bufio.NewScanner(ir)
	// запас на большие строки (properties могут быть объёмными)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		line, err := LineFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			res.Errors[lineNo] = err.Error()
			continue
		}
		lines = append(lines, *line)
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return lines, res, fmt.Errorf("scan: %w", err)
	}
	return lines, res, nil
}

// WriteLinesJSONL — пишет строки в канонический JSONL (одна запись на строку).
func WriteLinesJSONL(ow io.Writer, lines []domain.CartLineInput) error {
	for i := range lines {
		raw, err := json.Marshal(&lines[i])
		if err != nil {
			return fmt.Errorf("marshal line: %w", err)
		}
		if _, err := ow.Write(append(raw, '\n')); err != nil {
			return fmt.Errorf("write valid line: %w", err)
		}
	}
	return nil
}
