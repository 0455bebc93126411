package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/wb_cart/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ValidateFile — валидирует файл строк корзины (JSON-массив или JSONL) и пишет валидные строки в writer.
func ValidateFile(ctx context.Context, validator ports.LineValidator, filePath string, format InputFormat, ow io.Writer) (string, error) {
	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		default:
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		lines, err := LinesFromJSONArray(ctx, validator, raw)
		if err != nil {
			return "0 valid / 1 invalid", err
		}
		if err := WriteLinesJSONL(ow, lines); err != nil {
			return "", err
		}
		return fmt.Sprintf("%d valid / 0 invalid", len(lines)), nil

	case FormatJSONL:
		lines, result, err := LinesFromJSONL(ctx, validator, file)
		if err != nil {
			return "", err
		}
		if err := WriteLinesJSONL(ow, lines); err != nil {
			return "", err
		}
		summary := fmt.Sprintf("%d valid / %d invalid", result.ValidLinesCount, result.InvalidLinesCount)
		if result.InvalidLinesCount > 0 {
			return summary, fmt.Errorf("%w: %d invalid lines", ErrInvalidLine, result.InvalidLinesCount)
		}
		return summary, nil

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
