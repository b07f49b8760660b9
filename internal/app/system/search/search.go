// internal/app/system/search/search.go
package search

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// ContainsFold returns a field condition matching values that contain q,
// ignoring case. q is matched literally: regex metacharacters in user input
// carry no meaning. An empty q returns nil, meaning "no constraint".
//
//	filter := bson.M{}
//	if f := search.ContainsFold(q); f != nil {
//	    filter["subject"] = f
//	}
func ContainsFold(q string) bson.M {
	if q == "" {
		return nil
	}
	return bson.M{"$regex": regexp.QuoteMeta(q), "$options": "i"}
}
