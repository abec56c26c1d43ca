package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"songblog-backend/internal/domains/post/mocks"
	"songblog-backend/internal/domains/post/model"
	"songblog-backend/internal/domains/post/service"
	"songblog-backend/internal/domains/user"
	usermocks "songblog-backend/internal/domains/user/mocks"
	"songblog-backend/internal/shared/apperror"
)

var fixedNow = time.Date(2024, 5, 17, 9, 30, 0, 0, time.FixedZone("EEST", 3*3600))

func validRequest() model.CreatePostRequest {
	return model.CreatePostRequest{
		Title:    "  Hello  ",
		Text:     "Body",
		Username: "mila",
		Password: "s3cret",
	}
}

func TestCreatePost_Success(t *testing.T) {
	repo := new(mocks.Repository)
	creds := new(usermocks.Service)

	creds.On("Verify", mock.Anything, "mila", "s3cret").Return(&user.User{ID: 3, Username: "mila"}, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
		return p.Title == "Hello" && p.Text == "Body" && p.UserID == 3 &&
			p.CreatedAt.Equal(fixedNow) && p.CreatedAt.Location() == time.UTC
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Post).ID = 11
	}).Return(nil).Once()

	svc := service.NewPostServiceWithClock(repo, creds, func() time.Time { return fixedNow })
	p, err := svc.CreatePost(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(11), p.ID)
	repo.AssertExpectations(t)
	creds.AssertExpectations(t)
}

func TestCreatePost_InvalidCredentials(t *testing.T) {
	repo := new(mocks.Repository)
	creds := new(usermocks.Service)
	creds.On("Verify", mock.Anything, "mila", "s3cret").Return(nil, user.ErrInvalidCredentials).Once()

	svc := service.NewPostService(repo, creds)
	_, err := svc.CreatePost(context.Background(), validRequest())

	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidCredentials, ve.Code)
	assert.Equal(t, model.MsgInvalidCredentials, ve.Message)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePost_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		text    string
		wantMsg string
	}{
		{"missing title", "   ", "Body", model.MsgTitleRequired},
		{"missing text", "Hello", "", model.MsgTextRequired},
		{"whitespace-only text", "Hello", " \n\t ", model.MsgTextRequired},
		{"both missing", "", "", model.MsgTitleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.Repository)
			creds := new(usermocks.Service)

			req := validRequest()
			req.Title = tt.title
			req.Text = tt.text

			_, err := service.NewPostService(repo, creds).CreatePost(context.Background(), req)

			ve, ok := apperror.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, ve.Message)
			creds.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreatePost_StoreErrorIsInternal(t *testing.T) {
	repo := new(mocks.Repository)
	creds := new(usermocks.Service)
	dbErr := errors.New("foreign key violation")

	creds.On("Verify", mock.Anything, "mila", "s3cret").Return(&user.User{ID: 3}, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(dbErr).Once()

	_, err := service.NewPostService(repo, creds).CreatePost(context.Background(), validRequest())

	assert.ErrorIs(t, err, dbErr)
	_, isValidation := apperror.AsValidation(err)
	assert.False(t, isValidation)
}

func TestCreatePost_VerifyErrorIsInternal(t *testing.T) {
	repo := new(mocks.Repository)
	creds := new(usermocks.Service)
	creds.On("Verify", mock.Anything, "mila", "s3cret").Return(nil, errors.New("db down")).Once()

	_, err := service.NewPostService(repo, creds).CreatePost(context.Background(), validRequest())

	require.Error(t, err)
	_, isValidation := apperror.AsValidation(err)
	assert.False(t, isValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePost_KeepsBodyAndUsernameAsSubmitted(t *testing.T) {
	repo := new(mocks.Repository)
	creds := new(usermocks.Service)
	body := "\n  indented first line\n\nlast line  \n"

	creds.On("Verify", mock.Anything, " mila ", "s3cret").Return(nil, user.ErrInvalidCredentials).Once()

	req := validRequest()
	req.Username = " mila "
	_, err := service.NewPostService(repo, creds).CreatePost(context.Background(), req)
	_, ok := apperror.AsValidation(err)
	require.True(t, ok)

	creds.On("Verify", mock.Anything, "mila", "s3cret").Return(&user.User{ID: 3}, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
		return p.Text == body
	})).Return(nil).Once()

	req = validRequest()
	req.Text = body
	_, err = service.NewPostService(repo, creds).CreatePost(context.Background(), req)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	creds.AssertExpectations(t)
}
