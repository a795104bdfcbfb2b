//go:build unit

package user_test

import (
	"strings"
	"testing"

	"gear-rental/internal/domain/user"
	"gear-rental/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("success: new staff account is active", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		role, _ := user.NewRole("admin")
		expected := user.NewUser(email, "hashed_password", role, builder.FixedNow)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "success: plain address", mutate: func(b *builder.UserBuilder) { b.WithEmail("desk@rental.example") }},
			{name: "success: mixed case is accepted", mutate: func(b *builder.UserBuilder) { b.WithEmail("Staff@Example.COM") }},
			{name: "error: empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "error: no at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
			{name: "error: display name", mutate: func(b *builder.UserBuilder) { b.WithEmail("Desk <desk@rental.example>") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "success: admin", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "success: operator", mutate: func(b *builder.UserBuilder) { b.WithRole("operator") }},
			{name: "success: viewer", mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") }},
			{name: "success: case is normalized", mutate: func(b *builder.UserBuilder) { b.WithRole(" Operator ") }},
			{name: "error: unknown", mutate: func(b *builder.UserBuilder) { b.WithRole("owner") }, errIs: user.ErrInvalidRole},
			{name: "error: empty", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("success: inactive account keeps its identity", func(t *testing.T) {
		b := builder.NewUserBuilder().AsInactive()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.False(t, actual.IsActive())
		assert.Equal(t, b.ID, actual.ID())
	})
}

func TestEmail_Normalizes(t *testing.T) {
	email, err := user.NewEmail("  Desk@Rental.Example ")
	require.NoError(t, err)
	assert.Equal(t, "desk@rental.example", email.Value())
}

func TestRole_Covers(t *testing.T) {
	tests := []struct {
		role user.Role
		min  user.Role
		want bool
	}{
		{role: user.RoleAdmin, min: user.RoleOperator, want: true},
		{role: user.RoleOperator, min: user.RoleOperator, want: true},
		{role: user.RoleViewer, min: user.RoleOperator, want: false},
		{role: user.RoleOperator, min: user.RoleAdmin, want: false},
		{role: user.Role("owner"), min: user.RoleViewer, want: false},
		{role: user.RoleAdmin, min: user.Role(""), want: false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+">="+string(tt.min), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Covers(tt.min))
		})
	}
}

func TestNewPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "success: eight characters", input: "abcdefgh"},
		{name: "success: non-ASCII input", input: "grüße-über"},
		{name: "success: exactly 72 bytes", input: strings.Repeat("a", 72)},
		{name: "error: too short", input: "short", errIs: user.ErrPasswordTooWeak},
		{name: "error: longer than bcrypt accepts", input: strings.Repeat("a", 73), errIs: user.ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := user.NewPassword(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, pw.Value())
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}
