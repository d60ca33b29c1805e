package domain

import (
	"bytes"
	"encoding/json"
)

// Статусы ответа внешнего API.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// UpstreamResponse - тело ответа внешнего API клоакинга.
type UpstreamResponse struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"msg,omitempty"`
	Code    *int            `json:"code,omitempty"`
}

// OK - внешний API подтвердил успех.
func (r *UpstreamResponse) OK() bool { return r != nil && r.Status == StatusSuccess }

// Result - ответ, который ядро отдаёт CRUD-слою.
type Result struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Code    *int            `json:"code,omitempty"`
}

var emptyList = json.RawMessage("[]")

// SuccessResult - успешный результат с копией данных.
func SuccessResult(data json.RawMessage) Result {
	return Result{Status: StatusSuccess, Data: CloneRaw(data)}
}

// ErrorResult - "мягкая" ошибка: пустой список и сообщение.
func ErrorResult(message string) Result {
	return Result{Status: StatusError, Data: CloneRaw(emptyList), Message: message}
}

// ResultFromUpstream - перекладывает status/data/msg/code без изменений.
func ResultFromUpstream(resp *UpstreamResponse) Result {
	if resp == nil {
		return ErrorResult("empty upstream response")
	}
	return Result{
		Status:  resp.Status,
		Data:    CloneRaw(resp.Data),
		Message: resp.Message,
		Code:    resp.Code,
	}
}

// CloneRaw - копия JSON-значения, чтобы вызывающий не делил память с кэшем.
func CloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}

// HasItems - true для непустого массива или объекта.
// null, [], {}, скаляры и невалидный JSON считаются пустыми данными.
func HasItems(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return false
		}
		return len(list) > 0
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return false
		}
		return len(obj) > 0
	default:
		return false
	}
}
