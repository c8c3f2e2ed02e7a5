package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifeline-inc/dispatch-api/schema"
)

var ErrHospitalNotFound = fmt.Errorf("hospital not found")

// HospitalReader loads hospital records and their live telemetry overlay.
// Hospital capacity is written by an external ingest pipeline; the engine
// only reads.
type HospitalReader interface {
	ListRawHospitals() ([]schema.RawHospital, error)
	GetRawHospital(id string) (*schema.RawHospital, error)
	ListTelemetry() (map[string]schema.HospitalTelemetry, error)
}

// ListRawHospitals returns every hospital record in ingest form.
func (m *mongoDB) ListRawHospitals() ([]schema.RawHospital, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.client.Database(m.database).
		Collection(schema.HospitalCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	hospitals := []schema.RawHospital{}
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

// GetRawHospital returns one hospital record in ingest form.
func (m *mongoDB) GetRawHospital(id string) (*schema.RawHospital, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var h schema.RawHospital
	err := m.client.Database(m.database).
		Collection(schema.HospitalCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&h)
	if err == mongo.ErrNoDocuments {
		return nil, ErrHospitalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListTelemetry returns the live capacity overlay keyed by hospital id.
func (m *mongoDB) ListTelemetry() (map[string]schema.HospitalTelemetry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.client.Database(m.database).
		Collection(schema.TelemetryCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	telemetry := map[string]schema.HospitalTelemetry{}
	for cursor.Next(ctx) {
		var t schema.HospitalTelemetry
		if err := cursor.Decode(&t); err != nil {
			return nil, err
		}
		telemetry[t.HospitalID] = t
	}
	return telemetry, cursor.Err()
}
