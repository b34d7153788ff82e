package apimodels

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

// FieldErrors - ошибки валидации формы, поле -> список сообщений
type FieldErrors map[string][]string

type ValidationResponse struct {
	Response
	Errors FieldErrors `json:"errors,omitempty"` //ошибки по полям формы
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewValidationError(errs FieldErrors) ValidationResponse {
	return ValidationResponse{
		Response: Response{
			Status:  "fail",
			Message: "данные формы заполнены неверно",
		},
		Errors: errs,
	}
}
