package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-posts/internal/mock"
	"github.com/MKhiriev/go-posts/internal/store"
)

func TestGlobal_IsTokenValid_DelegatesToUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUsersProvider(ctrl)

	users.EXPECT().IsTokenValid(gomock.Any(), "good").Return(true)
	users.EXPECT().IsTokenValid(gomock.Any(), "bad").Return(false)

	g := NewGlobal(users)
	assert.True(t, g.IsTokenValid(context.Background(), "good"))
	assert.False(t, g.IsTokenValid(context.Background(), "bad"))
}

func TestGlobal_IsTokenValid_UnsetRejects(t *testing.T) {
	var nilGlobal *Global
	assert.False(t, nilGlobal.IsTokenValid(context.Background(), "token"))
	assert.False(t, NewGlobal(nil).IsTokenValid(context.Background(), "token"))
}

func TestNewStates_SharesUsersProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostsProvider(ctrl)
	users := mock.NewMockUsersProvider(ctrl)

	users.EXPECT().IsTokenValid(gomock.Any(), "t").Return(true)

	states := NewStates(&store.Storages{Posts: posts, Users: users})

	assert.Same(t, posts, states.Posts.Provider)
	assert.Same(t, users, states.Users.Provider)
	assert.True(t, states.Global.IsTokenValid(context.Background(), "t"))
}
