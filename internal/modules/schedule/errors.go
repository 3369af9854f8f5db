package schedule

import "errors"

var ErrValidation = errors.New("invalid schedule configuration")
