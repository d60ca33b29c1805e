package upstream

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
)

// APIKeyField - имя поля с ключом; всегда первое в теле.
const APIKeyField = "api_key"

// квадратные скобки в ключах оставляем как есть: field[0]=a
var bracketUnescaper = strings.NewReplacer("%5B", "[", "%5D", "]")

// EncodeForm - тело application/x-www-form-urlencoded.
// Ключ API идёт первым, остальные ключи в алфавитном порядке,
// списки разворачиваются в field[0]=a&field[1]=b с индексами от нуля.
func EncodeForm(apiKey string, fields domain.Fields) string {
	var b strings.Builder
	writePair(&b, APIKeyField, apiKey)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == APIKeyField {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if list, ok := listValues(fields[k]); ok {
			for i, v := range list {
				writePair(&b, k+"["+strconv.Itoa(i)+"]", v)
			}
			continue
		}
		writePair(&b, k, scalarString(fields[k]))
	}
	return b.String()
}

func writePair(b *strings.Builder, key, value string) {
	if b.Len() > 0 {
		b.WriteByte('&')
	}
	b.WriteString(bracketUnescaper.Replace(url.QueryEscape(key)))
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(value))
}

// listValues - элементы списка в виде строк; false для скаляров.
func listValues(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []int:
		out := make([]string, len(list))
		for i, n := range list {
			out[i] = strconv.Itoa(n)
		}
		return out, true
	case []int64:
		out := make([]string, len(list))
		for i, n := range list {
			out[i] = strconv.FormatInt(n, 10)
		}
		return out, true
	case []float64:
		out := make([]string, len(list))
		for i, f := range list {
			out[i] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return out, true
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			out[i] = scalarString(item)
		}
		return out, true
	default:
		return nil, false
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint:
		return strconv.FormatUint(uint64(s), 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}
