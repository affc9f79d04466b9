package domain

import "errors"

var (
	// ErrOrderNotFound — пустой результат поиска по идентификатору.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidDateTime — дата не соответствует формату yyyy-MM-dd HH:mm:ss.
	ErrInvalidDateTime = errors.New("invalid date-time")
	// ErrAccountRequired — запрос без идентификатора аккаунта.
	ErrAccountRequired = errors.New("account id is required")
	// ErrStationResolve — сервис станций недоступен или ответил ошибкой.
	ErrStationResolve = errors.New("station resolve failed")
	// ErrStationNamesMismatch — сервис станций вернул имён не столько, сколько запрошено идентификаторов.
	ErrStationNamesMismatch = errors.New("station names count mismatch")
)

// IsInputError сообщает, вызвана ли ошибка некорректными данными запроса.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidDateTime) || errors.Is(err, ErrAccountRequired)
}
