package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// userRepository implements the repository.UserRepository interface against
// the 'users' collection.
type userRepository struct {
	collection *mongo.Collection
	hasher     service.PasswordHasher
}

// NewUserRepository is the constructor for userRepository. The hasher is
// injected because the store owns the password-digest invariant: every write
// that sets the password field replaces it with its hash first.
func NewUserRepository(db *mongo.Database, hasher service.PasswordHasher) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(model.CollectionName),
		hasher:     hasher,
	}
}

// FindByUsername retrieves a single user by their username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, bson.M{"username": username}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return model.ToUserDomain(&userM), nil
}

// FindByUsernameOrEmail retrieves the first user matching either value.
func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	filter := bson.M{"$or": []bson.M{
		{"username": username},
		{"email": email},
	}}

	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username or email")
	}

	return model.ToUserDomain(&userM), nil
}

// Create persists a new user. The plaintext password is hashed exactly once
// here, at the point of persistence, so no plaintext ever reaches durable
// storage. Duplicate username or email surfaces as a conflict without
// revealing which field collided.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	digest, err := repo.hasher.Hash(user.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password during create")
	}

	userM := model.FromUserDomain(user)
	userM.Password = digest
	now := time.Now().UTC()
	userM.CreatedAt = now
	userM.UpdatedAt = now

	result, err := repo.collection.InsertOne(ctx, userM)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Reflect the stored state back onto the entity: generated ID, digest
	// instead of plaintext, timestamps.
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	user.Password = digest
	user.CreatedAt = now
	user.UpdatedAt = now

	return nil
}
