package customerror

import "fmt"

type CustomError struct {
	Module   string
	Endpoint string
	Message  string
}

var ErrAlreadyExists = fmt.Errorf("AlreadyExists")

var ErrPermissionDenied = fmt.Errorf("PermissionDenied")

var ErrWrongCredentials = fmt.Errorf("WrongCredentials")

var ErrInviteAlreadyAccepted = fmt.Errorf("InviteAlreadyAccepted")

var ErrJwtInvalid = fmt.Errorf("JWTInvalid")

var ErrJwtVersionIncorrect = fmt.Errorf("JwtVersionIncorrect")

func (customError CustomError) Error() string {
	return fmt.Sprintf("ERROR|%s|%s:%s", customError.Endpoint, customError.Module, customError.Message)
}

func (customError *CustomError) AppendModule(module string) {
	customError.Module = module + "." + customError.Module
}

func NewError(module, endpoint, message string) error {
	return CustomError{
		Module:   module,
		Endpoint: endpoint,
		Message:  message,
	}
}
