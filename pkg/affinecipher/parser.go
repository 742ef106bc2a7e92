package affinecipher

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ConfigParser defines the interface for loading a run configuration from a source.
type ConfigParser interface {
	// ParseConfig parses a configuration from a source and returns it.
	ParseConfig(source string) (*Config, error)
}

// Default JSON field names and the legacy names accepted in their absence.
const (
	defaultTableField      = "table"
	defaultBField          = "b"
	defaultPairsField      = "known_pairs"
	defaultCiphertextField = "ciphertext"
)

var legacyFields = map[string]string{
	defaultTableField:      "tabla",
	defaultPairsField:      "datos_descubiertos",
	defaultCiphertextField: "mensaje_encriptado",
}

// JSONParser parses a run configuration from a JSON file.
type JSONParser struct {
	TableField      string // Field name for the code → symbol table (default: "table")
	BField          string // Field name for the shift (default: "b")
	PairsField      string // Field name for known pairs (default: "known_pairs")
	CiphertextField string // Field name for the message (default: "ciphertext")
}

// ParseConfig parses a configuration from a JSON file.
//
// Expected format:
//
//	{
//	  "table": {"0": "a", "1": "b", "2": "c"},
//	  "b": 1,
//	  "known_pairs": {"a": "b", "b": "a"},
//	  "ciphertext": "bac"
//	}
//
// When a default field is missing, its legacy name ("tabla", "datos_descubiertos",
// "mensaje_encriptado") is used instead.
func (p *JSONParser) ParseConfig(jsonFile string) (*Config, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	return p.ParseConfigFrom(file)
}

// ParseConfigFrom parses a configuration from a JSON stream.
func (p *JSONParser) ParseConfigFrom(r io.Reader) (*Config, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber() // keep integers exact and reject fractional values

	var item map[string]interface{}
	if err := decoder.Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	cfg := &Config{
		Alphabet:   map[int]rune{},
		KnownPairs: map[rune]rune{},
	}

	if val, ok := lookupField(item, p.TableField, defaultTableField); ok {
		alphabet, err := parseAlphabet(val)
		if err != nil {
			return nil, fmt.Errorf("failed to parse table: %w", err)
		}
		cfg.Alphabet = alphabet
	}

	if val, ok := lookupField(item, p.BField, defaultBField); ok {
		b, err := parseInt(val)
		if err != nil {
			return nil, fmt.Errorf("failed to parse b: %w", err)
		}
		cfg.B = b
	}

	if val, ok := lookupField(item, p.PairsField, defaultPairsField); ok {
		pairs, err := parsePairs(val)
		if err != nil {
			return nil, fmt.Errorf("failed to parse known pairs: %w", err)
		}
		cfg.KnownPairs = pairs
	}

	if val, ok := lookupField(item, p.CiphertextField, defaultCiphertextField); ok {
		s, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("ciphertext must be a string, got %T", val)
		}
		cfg.Ciphertext = s
	}

	return cfg, nil
}

// lookupField resolves a configured field name, falling back to the default name and
// then to its legacy alias. Aliases only apply when the field name was not overridden.
func lookupField(item map[string]interface{}, configured, def string) (interface{}, bool) {
	if configured != "" && configured != def {
		val, ok := item[configured]
		return val, ok
	}
	if val, ok := item[def]; ok {
		return val, true
	}
	if legacy, ok := legacyFields[def]; ok {
		val, ok := item[legacy]
		return val, ok
	}
	return nil, false
}

func parseAlphabet(val interface{}) (map[int]rune, error) {
	entries, ok := val.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("table must be an object, got %T", val)
	}

	alphabet := make(map[int]rune, len(entries))
	for key, raw := range entries {
		code, err := parseCode(key)
		if err != nil {
			return nil, err
		}
		if _, dup := alphabet[code]; dup {
			return nil, fmt.Errorf("duplicate code %d", code)
		}
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("symbol for code %d must be a string, got %T", code, raw)
		}
		symbol, err := singleRune(s)
		if err != nil {
			return nil, fmt.Errorf("symbol for code %d: %w", code, err)
		}
		alphabet[code] = symbol
	}
	return alphabet, nil
}

func parsePairs(val interface{}) (map[rune]rune, error) {
	entries, ok := val.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("known pairs must be an object, got %T", val)
	}

	pairs := make(map[rune]rune, len(entries))
	for plain, raw := range entries {
		cipher, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("ciphertext symbol for %q must be a string, got %T", plain, raw)
		}
		// Multi-rune entries can never resolve against the table; drop them like any
		// other unusable pair.
		p, err := singleRune(plain)
		if err != nil {
			continue
		}
		c, err := singleRune(cipher)
		if err != nil {
			continue
		}
		pairs[p] = c
	}
	return pairs, nil
}

// parseInt parses an integer from a JSON number or a decimal string.
func parseInt(val interface{}) (int, error) {
	switch v := val.(type) {
	case json.Number:
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return 0, fmt.Errorf("invalid integer: %s", v)
		}
		return n, nil

	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("invalid integer: %q", v)
		}
		return n, nil

	case int:
		return v, nil

	default:
		return 0, fmt.Errorf("unsupported type: %T", val)
	}
}

func parseCode(s string) (int, error) {
	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid code %q: not an integer", s)
	}
	if code < 0 {
		return 0, fmt.Errorf("invalid code %d: must be non-negative", code)
	}
	return code, nil
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// CSVAlphabetParser parses an alphabet from a CSV file with a header row.
type CSVAlphabetParser struct {
	CodeCol   string // Column name for the code (default: "code")
	SymbolCol string // Column name for the symbol (default: "symbol")
}

// ParseAlphabet parses a code → symbol alphabet from a CSV file.
//
// Symbols are taken verbatim, so a space symbol must be quoted: 26," "
func (p *CSVAlphabetParser) ParseAlphabet(csvFile string) (map[int]rune, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	codeCol := p.CodeCol
	if codeCol == "" {
		codeCol = "code"
	}
	symbolCol := p.SymbolCol
	if symbolCol == "" {
		symbolCol = "symbol"
	}

	codeIdx := -1
	symbolIdx := -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case codeCol:
			codeIdx = i
		case symbolCol:
			symbolIdx = i
		}
	}
	if codeIdx == -1 || symbolIdx == -1 {
		return nil, fmt.Errorf("missing required columns: %s or %s", codeCol, symbolCol)
	}

	alphabet := make(map[int]rune)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		code, err := parseCode(record[codeIdx])
		if err != nil {
			return nil, err
		}
		if _, dup := alphabet[code]; dup {
			return nil, fmt.Errorf("duplicate code %d", code)
		}
		symbol, err := singleRune(record[symbolIdx])
		if err != nil {
			return nil, fmt.Errorf("symbol for code %d: %w", code, err)
		}
		alphabet[code] = symbol
	}

	return alphabet, nil
}
