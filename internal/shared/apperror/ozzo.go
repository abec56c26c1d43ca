package apperror

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FromOzzo chuyển lỗi ValidateStruct thành ValidationError.
// Message là lỗi của field đầu tiên theo thứ tự fields (tên field trong struct),
// các field không liệt kê thì xét theo alphabet.
func FromOzzo(code string, err error, fields ...string) *ValidationError {
	errs, ok := err.(validation.Errors)
	if !ok || len(errs) == 0 {
		return NewValidation(code, err.Error(), err)
	}

	for _, f := range fields {
		if fe, ok := errs[f]; ok && fe != nil {
			return NewValidation(code, fe.Error(), err)
		}
	}

	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return NewValidation(code, errs[keys[0]].Error(), err)
}
