package domain

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

// Tags reconhecidas pelos structs de entrada
const (
	TagBody  = "mapstructure"
	TagSheet = "xlsx"
)

var (
	dateType    = reflect.TypeOf(Date{})
	datePtrType = reflect.TypeOf(&Date{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// DateParser converte o texto de uma célula ou campo em Date
type DateParser func(string) (Date, error)

// NewDecoder monta o decoder mapstructure usado tanto na planilha quanto no corpo das requisições.
// Os hooks rodam duas vezes para campos ponteiro (no ponteiro e no elemento), por isso só
// atuam quando o destino não é ponteiro.
func NewDecoder(tag string, result any, parseDate DateParser) (*mapstructure.Decoder, error) {
	return mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          tag,
		WeaklyTypedInput: true,
		Result:           result,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			dateHookFunc(parseDate),
			decimalHookFunc(),
			intHookFunc(),
		),
	})
}

func dateHookFunc(parseDate DateParser) mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != dateType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return parseDate(v)
		case float64:
			return parseDate(strconv.FormatFloat(v, 'f', -1, 64))
		default:
			return data, nil
		}
	}
}

func decimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			d, err := decimal.NewFromString(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("valor decimal inválido %q", v)
			}
			return d, nil
		case float64:
			return decimal.NewFromFloat(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		default:
			return data, nil
		}
	}
}

// intHookFunc arredonda números com casas decimais (células calculadas, JSON 12.0)
func intHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to.Kind() != reflect.Int {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("valor numérico inválido %q", v)
			}
			return int(math.Round(f)), nil
		case float64:
			return int(math.Round(v)), nil
		default:
			return data, nil
		}
	}
}

// DateFields lista os nomes, segundo a tag informada, dos campos de data de um struct de entrada
func DateFields(tag string, input any) []string {
	t := reflect.TypeOf(input)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var names []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type != dateType && field.Type != datePtrType {
			continue
		}

		if name, _, _ := strings.Cut(field.Tag.Get(tag), ","); name != "" {
			names = append(names, name)
		}
	}

	return names
}
