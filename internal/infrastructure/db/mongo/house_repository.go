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

const housesCollection = "houses"

// HouseRepository persists listings in the houses collection.
type HouseRepository struct {
	coll *mongo.Collection
}

func NewHouseRepository(db *mongo.Database) *HouseRepository {
	return &HouseRepository{coll: db.Collection(housesCollection)}
}

type houseDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Image     string             `bson:"image"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	Price     float64            `bson:"price"`
	Currency  string             `bson:"currency"`
	Rooms     int                `bson:"rooms"`
	Year      int                `bson:"year"`
	Area      float64            `bson:"area"`
	AreaUnit  string             `bson:"area_unit"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func houseToDoc(h *domain.House) houseDoc {
	return houseDoc{
		Image:     h.Image,
		Name:      h.Name,
		Category:  h.Category,
		Price:     h.Price,
		Currency:  h.Currency,
		Rooms:     h.Rooms,
		Year:      h.Year,
		Area:      h.Area,
		AreaUnit:  h.AreaUnit,
		Status:    string(h.Status),
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func (d *houseDoc) toDomain() domain.House {
	return domain.House{
		ID:        d.ID.Hex(),
		Image:     d.Image,
		Name:      d.Name,
		Category:  d.Category,
		Price:     d.Price,
		Currency:  d.Currency,
		Rooms:     d.Rooms,
		Year:      d.Year,
		Area:      d.Area,
		AreaUnit:  d.AreaUnit,
		Status:    domain.HouseStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Create inserts a listing document and returns it with the
// server-assigned id.
func (r *HouseRepository) Create(ctx context.Context, house *domain.House) (*domain.House, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := houseToDoc(house)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert house: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert house: unexpected id type %T", res.InsertedID)
	}
	doc.ID = id
	created := doc.toDomain()
	return &created, nil
}

// Find returns listings ordered by creation time descending. An empty
// status applies no filter; any other value is matched exactly.
func (r *HouseRepository) Find(ctx context.Context, status string) ([]domain.House, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find houses: %w", err)
	}
	defer cur.Close(ctx)

	houses := make([]domain.House, 0)
	for cur.Next(ctx) {
		var doc houseDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode house: %w", err)
		}
		houses = append(houses, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate houses: %w", err)
	}
	return houses, nil
}

// EnsureIndexes creates the status filter index and the sort index.
func (r *HouseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
