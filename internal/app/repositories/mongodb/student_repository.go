package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/dberrors"
	"github.com/cohort-tools/api/internal/pkg/logger"
)

type studentDocument struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	FirstName   string              `bson:"firstName"`
	LastName    string              `bson:"lastName"`
	Email       string              `bson:"email"`
	Phone       string              `bson:"phone"`
	LinkedinURL string              `bson:"linkedinUrl"`
	Languages   []models.Language   `bson:"languages"`
	Program     models.Program      `bson:"program,omitempty"`
	Background  string              `bson:"background"`
	Image       string              `bson:"image"`
	Cohort      *primitive.ObjectID `bson:"cohort,omitempty"`
	Projects    []string            `bson:"projects"`
}

func newStudentDocument(s *models.Student) (studentDocument, error) {
	doc := studentDocument{
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		Phone:       s.Phone,
		LinkedinURL: s.LinkedinURL,
		Languages:   s.Languages,
		Program:     s.Program,
		Background:  s.Background,
		Image:       s.Image,
		Projects:    s.Projects,
	}
	if doc.Languages == nil {
		doc.Languages = []models.Language{}
	}
	if doc.Projects == nil {
		doc.Projects = []string{}
	}
	if id := s.CohortID(); id != "" {
		oid, err := parseObjectID(id)
		if err != nil {
			return doc, err
		}
		doc.Cohort = &oid
	}
	return doc, nil
}

func (d studentDocument) toModel() *models.Student {
	s := &models.Student{
		ID:          d.ID.Hex(),
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Phone:       d.Phone,
		LinkedinURL: d.LinkedinURL,
		Languages:   d.Languages,
		Program:     d.Program,
		Background:  d.Background,
		Image:       d.Image,
		Projects:    d.Projects,
	}
	if s.Languages == nil {
		s.Languages = []models.Language{}
	}
	if s.Projects == nil {
		s.Projects = []string{}
	}
	if d.Cohort != nil {
		s.Cohort = models.NewCohortRef(d.Cohort.Hex())
	}
	return s
}

func studentUpdateDocument(u models.StudentUpdate) (bson.M, error) {
	set := bson.M{}
	if u.FirstName != nil {
		set["firstName"] = *u.FirstName
	}
	if u.LastName != nil {
		set["lastName"] = *u.LastName
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.LinkedinURL != nil {
		set["linkedinUrl"] = *u.LinkedinURL
	}
	if u.Languages != nil {
		set["languages"] = models.UniqueLanguages(*u.Languages)
	}
	if u.Program != nil {
		set["program"] = *u.Program
	}
	if u.Background != nil {
		set["background"] = *u.Background
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.Projects != nil {
		set["projects"] = *u.Projects
	}

	update := bson.M{}
	switch {
	case u.ClearCohort:
		update["$unset"] = bson.M{"cohort": ""}
	case u.CohortID != nil:
		oid, err := parseObjectID(*u.CohortID)
		if err != nil {
			return nil, err
		}
		set["cohort"] = oid
	}
	if len(set) > 0 {
		update["$set"] = set
	}
	return update, nil
}

// StudentRepository stores students in the students collection
type StudentRepository struct {
	coll *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{coll: db.Collection(StudentsCollection)}
}

// List returns every student
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	return r.find(ctx, bson.M{})
}

// ListByCohort returns the students referencing cohortID
func (r *StudentRepository) ListByCohort(ctx context.Context, cohortID string) ([]*models.Student, error) {
	oid, err := parseObjectID(cohortID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"cohort": oid})
}

func (r *StudentRepository) find(ctx context.Context, filter bson.M) ([]*models.Student, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	var docs []studentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}

	students := make([]*models.Student, 0, len(docs))
	for _, d := range docs {
		students = append(students, d.toModel())
	}
	return students, nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc studentDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return doc.toModel(), nil
}

// Create inserts a student and sets its ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	doc, err := newStudentDocument(student)
	if err != nil {
		return err
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			logger.Warn().Str("email", student.Email).Msg("Attempted to create duplicate student")
			return apperrors.ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Msg("Error inserting student")
		return fmt.Errorf("error creating student: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	student.ID = oid.Hex()
	return nil
}

// Update applies a partial update and returns the updated student
func (r *StudentRepository) Update(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	doc, err := studentUpdateDocument(update)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated studentDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, doc, opts).Decode(&updated)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apperrors.ErrStudentNotFound
		case dberrors.IsDuplicateKeyError(err):
			return nil, apperrors.ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error updating student")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return updated.toModel(), nil
}

// Delete removes a student by id
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// ClearCohort unsets the cohort field on every student of cohortID
func (r *StudentRepository) ClearCohort(ctx context.Context, cohortID string) (int64, error) {
	oid, err := parseObjectID(cohortID)
	if err != nil {
		return 0, err
	}

	res, err := r.coll.UpdateMany(ctx, bson.M{"cohort": oid}, bson.M{"$unset": bson.M{"cohort": ""}})
	if err != nil {
		return 0, fmt.Errorf("error clearing cohort references: %w", err)
	}
	return res.ModifiedCount, nil
}

// Count returns the number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
