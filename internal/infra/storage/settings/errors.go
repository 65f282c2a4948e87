package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки ещё не сохранялись
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrStorage возвращается, когда хранилище недоступно
	ErrStorage = errors.New("settings.repository: storage error")

	// ErrDecode возвращается, когда сохранённые настройки не удаётся разобрать
	ErrDecode = errors.New("settings.repository: failed to decode settings")

	// ErrEncode возвращается при ошибке сериализации настроек
	ErrEncode = errors.New("settings.repository: failed to encode settings")
)
