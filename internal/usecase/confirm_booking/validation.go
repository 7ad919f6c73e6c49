package confirm_booking

import (
	"fmt"
	"strings"
)

// normalizeCode проверяет и очищает код подтверждения
func normalizeCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("%w: confirmation code is required", ErrInvalidInput)
	}
	return code, nil
}
