package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go_4_study_scheduler/internal/model"
)

const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。
// ボディが空の場合は ErrInvalidInput を返します。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	return decode(r, dst, false)
}

// DecodeOptionalJSONBody accepts an absent or empty body and leaves dst untouched.
func DecodeOptionalJSONBody(r *http.Request, dst interface{}) error {
	return decode(r, dst, true)
}

func decode(r *http.Request, dst interface{}, allowEmpty bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: request body is required", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}
