package models

import (
	"time"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
)

// Request модели

// ScopeRequest область блокировки: без Time блокируется весь день
type ScopeRequest struct {
	Date string  `json:"date"`
	Time *string `json:"time,omitempty"`
}

// Response модели

// BlockResponse заблокированный слот или день
type BlockResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      *string   `json:"time"`
	WholeDay  bool      `json:"wholeDay"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockListResponse список блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// Методы конвертации

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.BlockedSlot) *BlockResponse {
	resp := &BlockResponse{
		ID:        b.ID,
		Date:      b.Scope.Date(),
		WholeDay:  b.Scope.IsWholeDay(),
		CreatedAt: b.CreatedAt,
	}
	if t, ok := b.Scope.Time(); ok {
		resp.Time = &t
	}
	return resp
}

// FromDomainBlockList конвертирует список domain моделей в DTO
func FromDomainBlockList(blocks []*domain.BlockedSlot) *BlockListResponse {
	resp := &BlockListResponse{Blocks: make([]BlockResponse, 0, len(blocks))}
	for _, b := range blocks {
		resp.Blocks = append(resp.Blocks, *FromDomainBlock(b))
	}
	return resp
}
