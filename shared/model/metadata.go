package model

import "time"

// Metadata holds audit timestamps stored on documents but kept out of API payloads.
type Metadata struct {
	CreatedAt  time.Time `bson:"createdAt"  json:"-"`
	ModifiedAt time.Time `bson:"modifiedAt" json:"-"`
}
