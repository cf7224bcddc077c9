package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPost_CopiesInputAndID(t *testing.T) {
	date := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	in := PostInput{Author: "alice", Content: "hello", Date: date}

	p := NewPost("id-1", in)

	assert.Equal(t, Post{ID: "id-1", Author: "alice", Content: "hello", Date: date}, p)
	assert.Equal(t, in, p.Input())
}

func TestNewUser_CopiesInputAndID(t *testing.T) {
	u := NewUser("id-2", UserInput{Email: "a@b.com", Nickname: "ab"})

	assert.Equal(t, User{ID: "id-2", Email: "a@b.com", Nickname: "ab"}, u)
}

func TestAppBuildInfo_FillsNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.0.0")
}
