package converter

import (
	"gear-rental/internal/domain/user"
	"gear-rental/internal/infra/dbq"
)

func UserToInfra(u *user.User) dbq.CreateUserParams {
	return dbq.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}
}
