package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"

	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
)

// DecodeList decodes a result holding a JSON array. A missing or null body yields an empty list.
func DecodeList[T any](result *gatewayDomain.Result) ([]T, error) {
	list := []T{}
	if result == nil {
		return list, nil
	}

	body := bytes.TrimSpace(result.Body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return list, nil
	}

	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}
