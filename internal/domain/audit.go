package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MesaAudit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MesaID    string             `bson:"mesa_id" json:"mesa_id"`
	EventType string             `bson:"event_type" json:"event_type"`
	Numero    int                `bson:"numero" json:"numero"`
	Status    MesaStatus         `bson:"status" json:"status"`
	Detail    string             `bson:"detail,omitempty" json:"detail,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
