// Package tracer keeps a record of what the search drivers did.
package tracer

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"k8s.io/klog/v2"

	"github.com/openplanners/bestfirst/pkg/search"
)

// MongoURIForTesting enables test cases.
const MongoURIForTesting string = "mongodb://foo:123"

// Event describes one finished search.
type Event struct {
	Problem   string
	Algorithm string
	Solved    bool
	Cost      float64
	Path      []string
	Stats     search.Stats
}

// Tracer allows us to trace search events & hence keep a record of what the
// solver did.
type Tracer interface {
	// TraceSearch adds an event to e.g. a database.
	TraceSearch(event Event)
	// LastEvent returns the most recent event recorded for a problem.
	LastEvent(problem string, lookBackMinutes int) (*Event, error)
}

// MongoTracer wraps around a MongoDB client.
type MongoTracer struct {
	client *mongo.Client
}

// NewMongoTracer initializes a new tracer.
func NewMongoTracer(mongoURI string) *MongoTracer {
	mongoOptions := options.Client().ApplyURI(mongoURI)
	client, err := mongo.Connect(context.TODO(), mongoOptions)
	if err != nil {
		klog.Errorf("Could not connect to Mongo DB: %s", err)
		return &MongoTracer{nil}
	}
	if mongoURI != MongoURIForTesting {
		if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
			klog.Errorf("Could not ping Mongo DB: %s", err)
			return &MongoTracer{nil}
		}
	}
	return &MongoTracer{client}
}

func (t MongoTracer) TraceSearch(event Event) {
	doc := bson.D{
		{Key: "problem", Value: event.Problem},
		{Key: "timestamp", Value: time.Now()},
		{Key: "algorithm", Value: event.Algorithm},
		{Key: "solved", Value: event.Solved},
		{Key: "cost", Value: event.Cost},
		{Key: "path", Value: event.Path},
		{Key: "popped", Value: event.Stats.Popped},
		{Key: "pushed", Value: event.Stats.Pushed},
		{Key: "decreased", Value: event.Stats.Decreased},
		{Key: "discarded", Value: event.Stats.Discarded},
	}
	if t.client == nil {
		klog.Errorf("client not connected or not right client")
		return
	}
	collection := t.client.Database("searches").Collection("events")
	_, err := collection.InsertOne(context.TODO(), doc)
	if err != nil {
		klog.Errorf("Could not insert information into the database: %s.", err)
	}
}

func (t MongoTracer) LastEvent(problem string, lookBackMinutes int) (*Event, error) {
	if t.client == nil {
		return nil, fmt.Errorf("client not connected or incorrect client")
	}
	collection := t.client.Database("searches").Collection("events")
	lookBack := time.Now().Add(-time.Minute * time.Duration(lookBackMinutes))

	tempResult := bson.M{}
	opts := options.FindOne()
	opts.SetSort(bson.D{{Key: "_id", Value: -1}}) // want last doc.
	filter := bson.D{
		{Key: "problem", Value: problem},
		{Key: "timestamp", Value: bson.M{"$gt": lookBack}},
	}
	err := collection.FindOne(context.TODO(), filter, opts).Decode(tempResult)
	if err != nil {
		klog.Errorf("Error to decode: %s", err)
		return nil, err
	}
	event := &Event{Problem: problem}
	if algorithm, ok := tempResult["algorithm"].(string); ok {
		event.Algorithm = algorithm
	}
	if solved, ok := tempResult["solved"].(bool); ok {
		event.Solved = solved
	}
	if cost, ok := tempResult["cost"].(float64); ok {
		event.Cost = cost
	}
	return event, nil
}

// NoopTracer swallows all events.
type NoopTracer struct{}

func (NoopTracer) TraceSearch(Event) {}

func (NoopTracer) LastEvent(string, int) (*Event, error) {
	return nil, fmt.Errorf("tracing is disabled")
}
