package store

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/chartscript/pkg/chartdef"
	"github.com/matzehuels/chartscript/pkg/errors"
	chartio "github.com/matzehuels/chartscript/pkg/io"
)

// DefaultCollection is the collection charts are kept in.
const DefaultCollection = "charts"

// MongoStore keeps one document per chart. The definition is stored as its
// JSON encoding so data points keep their Go types on the way back.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type chartDoc struct {
	ID         string    `bson:"_id"`
	Title      string    `bson:"title,omitempty"`
	Definition string    `bson:"definition,omitempty"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

// NewMongoStore connects to uri and uses the named database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "ping mongodb")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(DefaultCollection),
	}, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Summary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.M{"definition": 0})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list charts")
	}
	defer cur.Close(ctx)

	var docs []chartDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list charts")
	}
	out := make([]Summary, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.summary())
	}
	return out, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*chartdef.Definition, error) {
	if err := errors.ValidateChartID(id); err != nil {
		return nil, err
	}
	var doc chartDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(errors.ErrCodeNotFound, "chart %q not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "get chart %s", id)
	}
	return doc.definition()
}

func (s *MongoStore) Put(ctx context.Context, def *chartdef.Definition) error {
	doc, err := newChartDoc(def, time.Now().UTC())
	if err != nil {
		return err
	}
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "put chart %s", doc.ID)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateChartID(id); err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete chart %s", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeNotFound, "chart %q not found", id)
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func newChartDoc(def *chartdef.Definition, now time.Time) (chartDoc, error) {
	if def == nil {
		return chartDoc{}, errors.NullArgument("definition")
	}
	if err := errors.ValidateChartID(def.ID); err != nil {
		return chartDoc{}, err
	}
	var buf bytes.Buffer
	if err := chartio.WriteDefinition(def, &buf, chartio.FormatJSON); err != nil {
		return chartDoc{}, err
	}
	return chartDoc{
		ID:         def.ID,
		Title:      def.Title,
		Definition: buf.String(),
		UpdatedAt:  now,
	}, nil
}

func (d chartDoc) definition() (*chartdef.Definition, error) {
	def, err := chartio.ReadDefinition(strings.NewReader(d.Definition), chartio.FormatJSON)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "chart %s", d.ID)
	}
	if def.ID == "" {
		def.ID = d.ID
	}
	return def, nil
}

func (d chartDoc) summary() Summary {
	return Summary{ID: d.ID, Title: d.Title, UpdatedAt: d.UpdatedAt}
}

var _ Store = (*MongoStore)(nil)
