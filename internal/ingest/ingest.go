// Package ingest разбирает файлы импорта (LGA и GeoJSON инцидентов) в модели
// до того, как что-либо будет записано в хранилище.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPayload - файл импорта не соответствует ожидаемому формату
var ErrInvalidPayload = errors.New("invalid payload")

// ErrEmptyPayload - файл импорта пуст
var ErrEmptyPayload = fmt.Errorf("%w: empty payload", ErrInvalidPayload)

// flexibleInt принимает целое число или строку с ним в пределах INTEGER, null трактуется как 0
type flexibleInt int

func (v *flexibleInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = 0
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected integer, got %s", data)
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return fmt.Errorf("expected integer, got %s", data)
	}
	*v = flexibleInt(f)
	return nil
}

func isEmpty(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}

// scalarText возвращает текст JSON-строки или литерал числа
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}
