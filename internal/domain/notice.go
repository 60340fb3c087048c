package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notice struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"companyID"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedByID uuid.UUID `json:"createdByID"`
	WriterName  string    `json:"writerName"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}
