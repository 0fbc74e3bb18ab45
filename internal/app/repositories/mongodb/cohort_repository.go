package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/dberrors"
	"github.com/cohort-tools/api/internal/pkg/logger"
)

type cohortDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Slug           string             `bson:"cohortSlug"`
	Name           string             `bson:"cohortName"`
	Program        models.Program     `bson:"program,omitempty"`
	Format         models.Format      `bson:"format,omitempty"`
	Campus         models.Campus      `bson:"campus,omitempty"`
	StartDate      time.Time          `bson:"startDate"`
	EndDate        *time.Time         `bson:"endDate,omitempty"`
	InProgress     bool               `bson:"inProgress"`
	ProgramManager string             `bson:"programManager"`
	LeadTeacher    string             `bson:"leadTeacher"`
	TotalHours     int                `bson:"totalHours"`
}

func newCohortDocument(c *models.Cohort) cohortDocument {
	return cohortDocument{
		Slug:           c.Slug,
		Name:           c.Name,
		Program:        c.Program,
		Format:         c.Format,
		Campus:         c.Campus,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		InProgress:     c.InProgress,
		ProgramManager: c.ProgramManager,
		LeadTeacher:    c.LeadTeacher,
		TotalHours:     c.TotalHours,
	}
}

func (d cohortDocument) toModel() *models.Cohort {
	return &models.Cohort{
		ID:             d.ID.Hex(),
		Slug:           d.Slug,
		Name:           d.Name,
		Program:        d.Program,
		Format:         d.Format,
		Campus:         d.Campus,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		InProgress:     d.InProgress,
		ProgramManager: d.ProgramManager,
		LeadTeacher:    d.LeadTeacher,
		TotalHours:     d.TotalHours,
	}
}

func cohortUpdateDocument(u models.CohortUpdate) bson.M {
	set := bson.M{}
	unset := bson.M{}
	setOrUnset := func(key, value string) {
		if value == "" {
			unset[key] = ""
			return
		}
		set[key] = value
	}
	if u.Slug != nil {
		set["cohortSlug"] = *u.Slug
	}
	if u.Name != nil {
		set["cohortName"] = *u.Name
	}
	if u.Program != nil {
		setOrUnset("program", string(*u.Program))
	}
	if u.Format != nil {
		setOrUnset("format", string(*u.Format))
	}
	if u.Campus != nil {
		setOrUnset("campus", string(*u.Campus))
	}
	if u.StartDate != nil {
		set["startDate"] = *u.StartDate
	}
	switch {
	case u.ClearEndDate:
		unset["endDate"] = ""
	case u.EndDate != nil:
		set["endDate"] = *u.EndDate
	}
	if u.InProgress != nil {
		set["inProgress"] = *u.InProgress
	}
	if u.ProgramManager != nil {
		set["programManager"] = *u.ProgramManager
	}
	if u.LeadTeacher != nil {
		set["leadTeacher"] = *u.LeadTeacher
	}
	if u.TotalHours != nil {
		set["totalHours"] = *u.TotalHours
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// CohortRepository stores cohorts in the cohorts collection
type CohortRepository struct {
	coll *mongo.Collection
}

// NewCohortRepository creates a new CohortRepository
func NewCohortRepository(db *mongo.Database) *CohortRepository {
	return &CohortRepository{coll: db.Collection(CohortsCollection)}
}

// List returns every cohort
func (r *CohortRepository) List(ctx context.Context) ([]*models.Cohort, error) {
	return r.find(ctx, bson.M{})
}

// GetByIDs returns the cohorts found among ids; malformed ids are ignored
func (r *CohortRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Cohort, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []*models.Cohort{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *CohortRepository) find(ctx context.Context, filter bson.M) ([]*models.Cohort, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying cohorts")
		return nil, fmt.Errorf("error listing cohorts: %w", err)
	}

	var docs []cohortDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding cohorts: %w", err)
	}

	cohorts := make([]*models.Cohort, 0, len(docs))
	for _, d := range docs {
		cohorts = append(cohorts, d.toModel())
	}
	return cohorts, nil
}

// GetByID retrieves a cohort by id
func (r *CohortRepository) GetByID(ctx context.Context, id string) (*models.Cohort, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc cohortDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCohortNotFound
		}
		return nil, fmt.Errorf("error retrieving cohort: %w", err)
	}
	return doc.toModel(), nil
}

// Create inserts a cohort and sets its ID
func (r *CohortRepository) Create(ctx context.Context, cohort *models.Cohort) error {
	res, err := r.coll.InsertOne(ctx, newCohortDocument(cohort))
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			logger.Warn().Str("cohortSlug", cohort.Slug).Msg("Attempted to create duplicate cohort")
			return apperrors.ErrCohortAlreadyExists
		}
		logger.Error().Err(err).Msg("Error inserting cohort")
		return fmt.Errorf("error creating cohort: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	cohort.ID = oid.Hex()
	return nil
}

// Update applies a partial update and returns the updated cohort
func (r *CohortRepository) Update(ctx context.Context, id string, update models.CohortUpdate) (*models.Cohort, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc cohortDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, cohortUpdateDocument(update), opts).Decode(&doc)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apperrors.ErrCohortNotFound
		case dberrors.IsDuplicateKeyError(err):
			return nil, apperrors.ErrCohortAlreadyExists
		}
		logger.Error().Err(err).Str("cohortID", id).Msg("Error updating cohort")
		return nil, fmt.Errorf("error updating cohort: %w", err)
	}
	return doc.toModel(), nil
}

// Delete removes a cohort by id
func (r *CohortRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting cohort: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrCohortNotFound
	}
	return nil
}

// Count returns the number of cohorts
func (r *CohortRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
