package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/uybor/uybor-api/internal/core/domain"
)

const actressesCollection = "actresses"

// ActressRepository persists performer catalog entries.
type ActressRepository struct {
	coll *mongo.Collection
}

func NewActressRepository(db *mongo.Database) *ActressRepository {
	return &ActressRepository{coll: db.Collection(actressesCollection)}
}

type actressDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	FullName        string             `bson:"full_name"`
	BirthDate       time.Time          `bson:"birth_date"`
	Nationality     string             `bson:"nationality"`
	ExperienceYears int                `bson:"experience_years"`
	MainGenre       string             `bson:"main_genre"`
	AwardsCount     int                `bson:"awards_count"`
	Agency          string             `bson:"agency,omitempty"`
	Languages       []string           `bson:"languages,omitempty"`
	SalaryPerMovie  float64            `bson:"salary_per_movie,omitempty"`
	LastProject     string             `bson:"last_project,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d *actressDoc) toDomain() domain.Actress {
	return domain.Actress{
		ID:              d.ID.Hex(),
		FullName:        d.FullName,
		BirthDate:       d.BirthDate,
		Nationality:     d.Nationality,
		ExperienceYears: d.ExperienceYears,
		MainGenre:       d.MainGenre,
		AwardsCount:     d.AwardsCount,
		Agency:          d.Agency,
		Languages:       d.Languages,
		SalaryPerMovie:  d.SalaryPerMovie,
		LastProject:     d.LastProject,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (r *ActressRepository) Create(ctx context.Context, a *domain.Actress) (*domain.Actress, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := actressDoc{
		FullName:        a.FullName,
		BirthDate:       a.BirthDate,
		Nationality:     a.Nationality,
		ExperienceYears: a.ExperienceYears,
		MainGenre:       a.MainGenre,
		AwardsCount:     a.AwardsCount,
		Agency:          a.Agency,
		Languages:       a.Languages,
		SalaryPerMovie:  a.SalaryPerMovie,
		LastProject:     a.LastProject,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert actress: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert actress: unexpected id type %T", res.InsertedID)
	}
	doc.ID = id
	created := doc.toDomain()
	return &created, nil
}

// FindAll returns every catalog entry, newest first.
func (r *ActressRepository) FindAll(ctx context.Context) ([]domain.Actress, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find actresses: %w", err)
	}
	defer cur.Close(ctx)

	actresses := make([]domain.Actress, 0)
	for cur.Next(ctx) {
		var doc actressDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode actress: %w", err)
		}
		actresses = append(actresses, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate actresses: %w", err)
	}
	return actresses, nil
}

// EnsureIndexes creates the sort index.
func (r *ActressRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
