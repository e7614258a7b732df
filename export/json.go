package export

import (
	"encoding/json"
	"fmt"
	"github.com/shopspring/decimal"
	"go-currency-converter/domain"
	"io"
	"math"
	"os"
	"strings"
)

// DefaultPath file written in the working directory
const DefaultPath = "data.json"

// indent four spaces per level
const indent = "    "

type document struct {
	Input  input                           `json:"input"`
	Output map[domain.Currency]json.Number `json:"output"`
}

type input struct {
	Amount   json.Number     `json:"amount"`
	Currency domain.Currency `json:"currency"`
}

// JSON writes result to path, replacing any existing file.
func JSON(path string, result domain.ConversionResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export [%v]: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export [%v]: closing: %w", path, cerr)
		}
	}()

	if err := Encode(f, result); err != nil {
		return fmt.Errorf("export [%v]: %w", path, err)
	}
	return nil
}

// Encode writes result as indented JSON to w, keys sorted.
// Converted amounts use their shortest form and always carry a fraction (9.0, 7.51).
func Encode(w io.Writer, result domain.ConversionResult) error {
	amount, err := number(result.Input.Amount)
	if err != nil {
		return fmt.Errorf("input amount: %w", err)
	}
	doc := document{
		Input: input{
			Amount:   json.Number(amount),
			Currency: result.Input.Currency,
		},
		Output: make(map[domain.Currency]json.Number, len(result.Output)),
	}
	for code, v := range result.Output {
		s, err := number(v)
		if err != nil {
			return fmt.Errorf("output [%v]: %w", code, err)
		}
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		doc.Output[code] = json.Number(s)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// number the shortest decimal form of amount
func number(amount domain.Amount) (string, error) {
	f := float64(amount)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("not a finite number: %v", f)
	}
	return decimal.NewFromFloat(f).String(), nil
}
