package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Message belongs to a connection thread. Rows exist only for accepted
// connections; the gate is enforced at the usecase layer.
type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID           uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ConnectionID uuid.UUID `bun:",notnull,type:uuid"`
	SenderID     uuid.UUID `bun:",notnull,type:uuid"`

	Content string `bun:",notnull"`

	ReadAt    *time.Time `bun:",nullzero"`
	CreatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
}
