package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// isUniqueConstraintViolation reports whether an insert failed on one of the
// unique indexes (username or email). The driver folds all server-side
// duplicate-key codes into one check.
func isUniqueConstraintViolation(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
