package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/dberrors"
	"github.com/cohort-tools/api/internal/pkg/logger"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d userDocument) toModel() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.Password,
		Name:         d.Name,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UserRepository stores users in the users collection
type UserRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(UsersCollection), now: time.Now}
}

// Create inserts a user, stamping its timestamps
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := r.now().UTC()
	doc := userDocument{
		Email:     user.Email,
		Password:  user.PasswordHash,
		Name:      user.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error inserting user")
		return fmt.Errorf("error creating user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	user.ID = oid.Hex()
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return doc.toModel(), nil
}
