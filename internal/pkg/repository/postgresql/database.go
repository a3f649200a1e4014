// Package postgresql owns the bun database handle shared by every
// repository, plus the claims/validation helpers the repositories lean on.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"golang.org/x/crypto/bcrypt"
)

type Database struct {
	*bun.DB
	defaultLimit int
}

// Config carries what is needed to open the connection.
type Config struct {
	Username   string
	Password   string
	Host       string
	Port       string
	Name       string
	DisableTLS bool
}

func New(cfg Config) *Database {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	if cfg.DisableTLS {
		dsn += "?sslmode=disable"
	}

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	db := bun.NewDB(sqlDB, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(false)))

	return &Database{
		DB:           db,
		defaultLimit: 10,
	}
}

func (d Database) DefaultLimit() int {
	return d.defaultLimit
}

// CheckClaims pulls the authenticated claims out of the request context and,
// when roles are given, checks the caller holds one of them.
func (d Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	claims, ok := ctx.Value(auth.Key).(auth.Claims)
	if !ok {
		return auth.Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}

	if len(roles) > 0 && !claims.Authorized(roles...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	return claims, nil
}

// ValidateStruct checks the listed fields of the request struct were
// provided. Pointer fields must be non-nil, value fields non-zero.
func (d Database) ValidateStruct(s interface{}, requiredFields ...string) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var fields []web.FieldError
	for _, name := range requiredFields {
		field := v.FieldByName(name)
		if !field.IsValid() {
			continue
		}
		missing := false
		if field.Kind() == reflect.Ptr {
			missing = field.IsNil()
		} else {
			missing = field.IsZero()
		}
		if missing {
			fields = append(fields, web.FieldError{Field: name, Error: "required"})
		}
	}

	if len(fields) > 0 {
		return &web.Error{
			Err:    errors.New("invalid request body"),
			Status: http.StatusBadRequest,
			Fields: fields,
		}
	}

	return nil
}

// DeleteRow marks a row deleted, stamping who did it.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx)
	if err != nil {
		return err
	}

	q := d.NewUpdate().
		Table(table).
		Where("deleted_at IS NULL AND id = ?", id).
		Set("deleted_at = now()").
		Set("deleted_by = ?", claims.UserId)

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusBadRequest)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return web.NewRequestError(errors.Errorf("row not found in %s", table), http.StatusNotFound)
	}

	return nil
}

// GenerateHash is used when creating users from the admin surface.
func (d Database) GenerateHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "generating password hash")
	}
	return string(hash), nil
}
