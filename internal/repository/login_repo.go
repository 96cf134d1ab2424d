package repository

import (
	"context"
	"time"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/storage"
)

type LoginRepository interface {
	Save(ctx context.Context, login *domain.Login) (*domain.Login, error)
	FindByID(ctx context.Context, id int64) (mo.Option[domain.Login], error)
	FindByEmail(ctx context.Context, email string) (mo.Option[domain.Login], error)
	FindAll(ctx context.Context) ([]domain.Login, error)
	Update(ctx context.Context, login *domain.Login) (*domain.Login, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type loginRepo struct {
	base
}

func NewLoginRepository(pool *storage.Pool, logger *zap.Logger) LoginRepository {
	return &loginRepo{base{pool: pool, logger: logger}}
}

const loginColumns = `login_id, email, password_hash, user_type, status, created_date`

func scanLogin(row scanner) (domain.Login, error) {
	var (
		l        domain.Login
		userType string
		status   string
	)
	if err := row.Scan(&l.LoginID, &l.Email, &l.PasswordHash, &userType, &status, &l.CreatedDate); err != nil {
		return l, err
	}

	var err error
	if l.UserType, err = domain.ParseUserType(userType); err != nil {
		return l, err
	}
	if l.Status, err = domain.ParseAccountStatus(status); err != nil {
		return l, err
	}
	return l, nil
}

func (r *loginRepo) Save(ctx context.Context, login *domain.Login) (*domain.Login, error) {
	query := `
		INSERT INTO login (email, password_hash, user_type, status, created_date)
		VALUES (?, ?, ?, ?, ?)
	`

	createdDate := time.Now().UTC()
	id, err := insertRow(ctx, r.base, "login", query,
		login.Email, login.PasswordHash, string(login.UserType), string(login.Status), createdDate)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, storage.NewDatabaseError("email already exists: "+login.Email, err)
		}
		return nil, err
	}

	login.LoginID = id
	login.CreatedDate = createdDate
	return login, nil
}

func (r *loginRepo) FindByID(ctx context.Context, id int64) (mo.Option[domain.Login], error) {
	query := `SELECT ` + loginColumns + ` FROM login WHERE login_id = ?`
	return queryOne(ctx, r.base, "error finding login by ID", query, scanLogin, id)
}

func (r *loginRepo) FindByEmail(ctx context.Context, email string) (mo.Option[domain.Login], error) {
	query := `SELECT ` + loginColumns + ` FROM login WHERE email = ?`
	return queryOne(ctx, r.base, "error finding login by email", query, scanLogin, email)
}

func (r *loginRepo) FindAll(ctx context.Context) ([]domain.Login, error) {
	query := `SELECT ` + loginColumns + ` FROM login ORDER BY created_date DESC`
	return queryAll(ctx, r.base, "error finding all logins", query, scanLogin)
}

func (r *loginRepo) Update(ctx context.Context, login *domain.Login) (*domain.Login, error) {
	query := `
		UPDATE login
		SET email = ?, password_hash = ?, user_type = ?, status = ?
		WHERE login_id = ?
	`

	n, err := execute(ctx, r.base, "error updating login", query,
		login.Email, login.PasswordHash, string(login.UserType), string(login.Status), login.LoginID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, storage.NewDatabaseError("updating login failed, no rows affected", nil)
	}
	return login, nil
}

func (r *loginRepo) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := execute(ctx, r.base, "error deleting login", `DELETE FROM login WHERE login_id = ?`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *loginRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT COUNT(*) FROM login WHERE email = ?`

	count, err := queryOne(ctx, r.base, "error checking if email exists", query,
		func(row scanner) (int64, error) {
			var n int64
			err := row.Scan(&n)
			return n, err
		}, email)
	if err != nil {
		return false, err
	}
	return count.OrElse(0) > 0, nil
}
