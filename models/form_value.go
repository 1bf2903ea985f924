package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FormValue - значение поля формы. Браузер присылает его строкой или числом,
// разбор и проверка выполняются в сервисном слое.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("form value must be a string or a number: %w", err)
		}
		*v = FormValue(n.String())
	}
	return nil
}

func (v FormValue) String() string {
	return string(v)
}
