package models

import "time"

type Favorite struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"userID" json:"userID"`
	PropertyID string    `bson:"propertyID" json:"propertyID"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
