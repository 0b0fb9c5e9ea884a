package availability

import "errors"

var (
	// ErrMalformedTime возвращается, если время в профиле, записи или блокировке не парсится
	ErrMalformedTime = errors.New("availability: malformed time")

	// ErrInvalidProfile возвращается при некорректном рабочем профиле мастера
	ErrInvalidProfile = errors.New("availability: invalid working profile")

	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("availability: duration must be positive")

	// ErrInvalidBlock возвращается при блокировке с перевернутым интервалом
	ErrInvalidBlock = errors.New("availability: invalid time block")
)
