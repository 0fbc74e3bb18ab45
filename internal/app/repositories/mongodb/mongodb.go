// Package mongodb implements the repositories on top of a MongoDB database.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cohort-tools/api/internal/app/repositories"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/logger"
)

// Collection names
const (
	CohortsCollection  = "cohorts"
	StudentsCollection = "students"
	UsersCollection    = "users"
)

// NewRepositories creates the MongoDB-backed repositories
func NewRepositories(db *mongo.Database) *repositories.Repositories {
	return &repositories.Repositories{
		Cohorts:  NewCohortRepository(db),
		Students: NewStudentRepository(db),
		Users:    NewUserRepository(db),
	}
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		CohortsCollection: {
			{Keys: bson.D{{Key: "cohortSlug", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		StudentsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "cohort", Value: 1}}},
		},
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for collection, specs := range indexes {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, specs)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
		logger.Debug().Str("collection", collection).Strs("indexes", names).Msg("Indexes ensured")
	}
	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewInvalidIDError(id)
	}
	return oid, nil
}
