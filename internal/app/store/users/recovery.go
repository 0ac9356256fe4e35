// internal/app/store/users/recovery.go
package userstore

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"recetario/internal/app/system/normalize"
	"recetario/internal/app/system/status"
	"recetario/internal/domain/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IssueRecoveryCode generates a 6-digit numeric code and stores it as the
// account's single active recovery code, overwriting any previous one.
// Only fully registered accounts may start recovery.
func (s *Store) IssueRecoveryCode(ctx context.Context, email string) (string, error) {
	u, err := s.getByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u.Status != status.UserFullRegistered {
		return "", apperr.BadRequest("user is not fully registered")
	}

	code, err := numericCode(6)
	if err != nil {
		return "", apperr.Internal(err, "generating recovery code")
	}

	_, err = s.c.UpdateOne(ctx,
		bson.M{"_id": u.ID},
		bson.M{"$set": bson.M{
			"last_recovery_code": code,
			"updated_at":         time.Now().UTC(),
		}},
	)
	if err != nil {
		return "", apperr.Internal(err, "storing recovery code for %s", u.ID.Hex())
	}
	return code, nil
}

// ChangePassword sets a new password for the account matching the
// (email, code) pair exactly. The code is single-use: it is cleared in the
// same update, so a repeat call with the same code fails NotFound.
func (s *Store) ChangePassword(ctx context.Context, email, newPassword, code string) error {
	email = normalize.Email(email)

	var u struct {
		ID     interface{} `bson:"_id"`
		Status string      `bson:"status"`
	}
	err := s.c.FindOne(ctx, bson.M{
		"email":              email,
		"last_recovery_code": code,
	}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.NotFound("user not found or invalid recovery code")
		}
		return apperr.Internal(err, "looking up recovery code")
	}
	if u.Status != status.UserFullRegistered {
		return apperr.BadRequest("user is not fully registered")
	}

	stored, err := s.scheme.Hash(newPassword)
	if err != nil {
		return apperr.Internal(err, "hashing password")
	}

	_, err = s.c.UpdateOne(ctx,
		bson.M{"_id": u.ID},
		bson.M{
			"$set": bson.M{
				"password":   stored,
				"updated_at": time.Now().UTC(),
			},
			"$unset": bson.M{"last_recovery_code": ""},
		},
	)
	if err != nil {
		return apperr.Internal(err, "updating password")
	}
	return nil
}

// numericCode returns n crypto-random decimal digits.
func numericCode(n int) (string, error) {
	code := ""
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += fmt.Sprintf("%d", d.Int64())
	}
	return code, nil
}
