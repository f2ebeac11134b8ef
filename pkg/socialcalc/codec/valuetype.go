package codec

import (
	"fmt"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// ParseValueType decodes a value type mnemonic such as "n%" or "e#REF!".
// The empty mnemonic is models.ValueUndefined.
func ParseValueType(code string) (models.ValueType, error) {
	if code == "" {
		return models.ValueUndefined, nil
	}

	switch code[0] {
	case 'n':
		if len(code) == 1 {
			return models.ValueNumber, nil
		}
		switch code[1] {
		case '%':
			if len(code) == 2 {
				return models.ValuePercentage, nil
			}
		case '$':
			if len(code) == 2 {
				return models.ValueCurrency, nil
			}
		case 'l':
			if len(code) == 2 {
				return models.ValueLogical, nil
			}
		case 't':
			if len(code) == 2 {
				return models.ValueTime, nil
			}
		case 'd':
			switch {
			case len(code) == 2:
				return models.ValueDate, nil
			case len(code) == 3 && code[2] == 't':
				return models.ValueDateTime, nil
			}
		}
	case 't':
		switch {
		case len(code) == 1:
			return models.ValueText, nil
		case len(code) == 2 && code[1] == 'h':
			return models.ValueHTML, nil
		case len(code) == 2 && code[1] == 'l':
			return models.ValueURL, nil
		}
	case 'e':
		switch code {
		case "e#N/A":
			return models.ValueErrorNA, nil
		case "e#NULL!":
			return models.ValueErrorNull, nil
		case "e#NUM!":
			return models.ValueErrorNum, nil
		case "e#DIV/0!":
			return models.ValueErrorDiv0, nil
		case "e#VALUE!":
			return models.ValueErrorValue, nil
		case "e#REF!":
			return models.ValueErrorRef, nil
		case "e#NAME?":
			return models.ValueErrorName, nil
		}
	}
	return models.ValueUndefined, &DecodeError{Kind: KindValueType, Token: code}
}

// FormatValueType returns the mnemonic of vt.
func FormatValueType(vt models.ValueType) (string, error) {
	switch vt {
	case models.ValueUndefined:
		return "", nil
	case models.ValueText:
		return "t", nil
	case models.ValueHTML:
		return "th", nil
	case models.ValueURL:
		return "tl", nil
	case models.ValueNumber:
		return "n", nil
	case models.ValueLogical:
		return "nl", nil
	case models.ValuePercentage:
		return "n%", nil
	case models.ValueCurrency:
		return "n$", nil
	case models.ValueDate:
		return "nd", nil
	case models.ValueTime:
		return "nt", nil
	case models.ValueDateTime:
		return "ndt", nil
	case models.ValueErrorNA:
		return "e#N/A", nil
	case models.ValueErrorNull:
		return "e#NULL!", nil
	case models.ValueErrorNum:
		return "e#NUM!", nil
	case models.ValueErrorDiv0:
		return "e#DIV/0!", nil
	case models.ValueErrorValue:
		return "e#VALUE!", nil
	case models.ValueErrorRef:
		return "e#REF!", nil
	case models.ValueErrorName:
		return "e#NAME?", nil
	}
	return "", fmt.Errorf("no mnemonic for %v", vt)
}
