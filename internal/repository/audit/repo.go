// Package audit stores per-recipient WhatsApp delivery results of campaigns.
package audit

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Entry is a single delivery attempt written to the audit collection.
type Entry struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampaignID        string             `bson:"campaign_id" json:"campaign_id"`
	Recipient         string             `bson:"recipient" json:"recipient"`
	Success           bool               `bson:"success" json:"success"`
	ProviderMessageID string             `bson:"provider_message_id,omitempty" json:"provider_message_id,omitempty"`
	Error             string             `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}

// Repository writes audit entries into a Mongo collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a Repository over coll.
func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{coll: coll}
}

// EnsureTTLIndex creates the index that expires entries ttl after
// created_at. A non-positive ttl keeps entries forever.
func (r *Repository) EnsureTTLIndex(ctx context.Context, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	}

	if _, err := r.coll.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("failed to create audit ttl index: %w", err)
	}

	return nil
}

// Record inserts entries in one batch. An empty batch is a no-op.
func (r *Repository) Record(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, e := range entries {
		docs[i] = e
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to record delivery audit: %w", err)
	}

	return nil
}
