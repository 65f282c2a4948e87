package ledger

import "errors"

var (
	// ErrStorage возвращается, когда не удалось прочитать состояние из хранилища
	ErrStorage = errors.New("ledger: storage error")
)
