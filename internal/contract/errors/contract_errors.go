package contracterrors

import (
	"go-paie/internal/shared/apperror"
	"net/http"
)

var ErrNoActiveContract = apperror.New(
	apperror.CodeInvalidState,
	"Employee has no running contract",
	http.StatusUnprocessableEntity,
)
