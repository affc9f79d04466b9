package domain

const (
	// StatusFailure — код неуспешного ответа.
	StatusFailure = 0
	// StatusSuccess — код успешного ответа.
	StatusSuccess = 1
)

// Response — единый конверт ответа операций сервиса заказов.
// Вызывающие ветвятся по Status: часть отказов несёт в Data маркерное значение.
type Response[T any] struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
	Data   T      `json:"data"`
}

// Success формирует успешный конверт.
func Success[T any](msg string, data T) Response[T] {
	return Response[T]{Status: StatusSuccess, Msg: msg, Data: data}
}

// Failure формирует неуспешный конверт без данных.
// Операции над одним заказом используют Response[*Order], чтобы отказ сериализовался с "data":null.
func Failure[T any](msg string) Response[T] {
	var zero T
	return Response[T]{Status: StatusFailure, Msg: msg, Data: zero}
}

// OK сообщает, успешен ли ответ.
func (r Response[T]) OK() bool {
	return r.Status == StatusSuccess
}
