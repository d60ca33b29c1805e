package domain

import (
	"slices"
	"strings"
)

// Fields - поля запроса к внешнему API.
// Значения: string, bool, int, int64, float64 или списки []string, []int, []int64, []any.
// Порядок ключей не важен, списки кодируются как field[0], field[1], ...
type Fields map[string]any

// NewFields - пустой набор полей.
func NewFields() Fields { return Fields{} }

// Set - записать значение как есть.
func (f Fields) Set(key string, v any) Fields {
	f[key] = v
	return f
}

// SetString - записать строку, если она не пустая.
func (f Fields) SetString(key, v string) Fields {
	if v = strings.TrimSpace(v); v != "" {
		f[key] = v
	}
	return f
}

// SetInt - записать целое всегда (0 тоже значение).
func (f Fields) SetInt(key string, v int64) Fields {
	f[key] = v
	return f
}

// SetPositiveInt - записать целое, если оно больше нуля.
func (f Fields) SetPositiveInt(key string, v int64) Fields {
	if v > 0 {
		f[key] = v
	}
	return f
}

// SetIntPtr - записать целое, если оно задано.
func (f Fields) SetIntPtr(key string, v *int64) Fields {
	if v != nil {
		f[key] = *v
	}
	return f
}

// SetBoolPtr - записать флаг, если он задан.
func (f Fields) SetBoolPtr(key string, v *bool) Fields {
	if v != nil {
		f[key] = *v
	}
	return f
}

// SetStrings - записать непустой список строк (пустые элементы отбрасываются).
func (f Fields) SetStrings(key string, v []string) Fields {
	list := make([]string, 0, len(v))
	for _, s := range v {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	if len(list) > 0 {
		f[key] = list
	}
	return f
}

// SetInts - записать непустой список целых.
func (f Fields) SetInts(key string, v []int64) Fields {
	if len(v) > 0 {
		f[key] = slices.Clone(v)
	}
	return f
}

// Clone - поверхностная копия (списки копируются).
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		switch list := v.(type) {
		case []string:
			out[k] = slices.Clone(list)
		case []int64:
			out[k] = slices.Clone(list)
		case []int:
			out[k] = slices.Clone(list)
		case []any:
			out[k] = slices.Clone(list)
		default:
			out[k] = v
		}
	}
	return out
}
