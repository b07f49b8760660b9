// Package dbresult holds the JSON shapes of store write results.
//
// They mirror the counts reported by the MongoDB driver so API clients see
// the same acknowledgement fields regardless of which store method ran.
package dbresult

import "go.mongodb.org/mongo-driver/mongo"

// Insert is the result of an insert.
type Insert struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// Update is the result of an update. A zero MatchedCount means no document
// had the given identifier.
type Update struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

// Delete is the result of a delete.
type Delete struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// FromInsert converts a driver insert result.
func FromInsert(r *mongo.InsertOneResult) Insert {
	if r == nil {
		return Insert{}
	}
	return Insert{Acknowledged: true, InsertedID: r.InsertedID}
}

// FromUpdate converts a driver update result.
func FromUpdate(r *mongo.UpdateResult) Update {
	if r == nil {
		return Update{}
	}
	return Update{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedID:    r.UpsertedID,
	}
}

// FromDelete converts a driver delete result.
func FromDelete(r *mongo.DeleteResult) Delete {
	if r == nil {
		return Delete{}
	}
	return Delete{Acknowledged: true, DeletedCount: r.DeletedCount}
}

// NoopUpdate is reported for an update that had nothing to set.
func NoopUpdate() Update {
	return Update{Acknowledged: true}
}
