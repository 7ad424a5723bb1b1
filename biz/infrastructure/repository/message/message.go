package message

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID      string             `bson:"class_id" json:"classId"`
	Sender       string             `bson:"sender" json:"sender"`
	Content      string             `bson:"content" json:"content"`
	Channel      string             `bson:"channel" json:"channel"`
	AssignmentID *string            `bson:"assignment_id,omitempty" json:"assignmentId,omitempty"`
	CreateTime   time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime   time.Time          `bson:"update_time" json:"updateTime"`
}
