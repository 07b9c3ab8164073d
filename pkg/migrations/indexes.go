package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func uniqueIndex(collection, field string) func(db *mongo.Database) error {
	return func(db *mongo.Database) error {
		_, err := db.Collection(collection).Indexes().CreateOne(
			context.Background(),
			mongo.IndexModel{
				Keys:    bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		)
		return err
	}
}

// Setup registers every uniqueness constraint the write paths rely on:
// duplicate titles, slugs and emails come back from mongo as duplicate
// key errors.
func Setup(db *mongo.Database) *MigrationManager {
	return NewMigrationManager(db).
		AddMigration(Migration{
			Version:     "001",
			Description: "unique category titles",
			Up:          uniqueIndex("Category", "title"),
		}).
		AddMigration(Migration{
			Version:     "002",
			Description: "unique job slugs",
			Up:          uniqueIndex("Job", "slug"),
		}).
		AddMigration(Migration{
			Version:     "003",
			Description: "unique scholarship slugs",
			Up:          uniqueIndex("Scholarship", "slug"),
		}).
		AddMigration(Migration{
			Version:     "004",
			Description: "unique multijob slugs",
			Up:          uniqueIndex("Multijob", "slug"),
		}).
		AddMigration(Migration{
			Version:     "005",
			Description: "unique user emails",
			Up:          uniqueIndex("User", "email"),
		}).
		AddMigration(Migration{
			Version:     "006",
			Description: "unique subscriber emails",
			Up:          uniqueIndex("Subscriber", "email"),
		})
}
