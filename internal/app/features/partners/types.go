// internal/app/features/partners/types.go
package partners

import (
	"github.com/dalemusser/studymate/internal/app/system/dbresult"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createResponse struct {
	Message    string             `json:"message"`
	InsertedID primitive.ObjectID `json:"insertedId"`
	Result     dbresult.Insert    `json:"result"`
}

type updateResponse struct {
	Message string          `json:"message"`
	Result  dbresult.Update `json:"result"`
}

type deleteResponse struct {
	Message string          `json:"message"`
	Result  dbresult.Delete `json:"result"`
}
