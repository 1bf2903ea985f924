package apiclient

import (
	"encoding/json"
	"fmt"
)

func decodeBody(raw []byte, dst interface{}) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
