package handler_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"songblog-backend/internal/domains/song/handler"
	"songblog-backend/internal/domains/song/mocks"
	"songblog-backend/internal/domains/song/model"
	"songblog-backend/internal/domains/song/service"
	"songblog-backend/internal/domains/user"
	usermocks "songblog-backend/internal/domains/user/mocks"
	"songblog-backend/internal/web"
)

type fixture struct {
	repo     *mocks.Repository
	creds    *usermocks.Service
	uploader *mocks.Uploader
	fetcher  *mocks.Fetcher
	router   *gin.Engine
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)
	f := &fixture{
		repo:     new(mocks.Repository),
		creds:    new(usermocks.Service),
		uploader: new(mocks.Uploader),
		fetcher:  new(mocks.Fetcher),
	}
	svc := service.NewSongService(f.repo, f.creds, f.uploader, f.fetcher)
	h := handler.NewHandler(svc, 1<<20)

	f.router = gin.New()
	f.router.SetHTMLTemplate(web.MustTemplates())
	f.router.GET("/song", h.SongForm)
	f.router.POST("/song", h.CreateSong)
	return f
}

func multipartRequest(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", "cover.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/song", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func (f *fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestSongForm(t *testing.T) {
	f := newFixture()

	w := f.serve(httptest.NewRequest(http.MethodGet, "/song", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `enctype="multipart/form-data"`)
}

func TestCreateSong_ManualMissingImage(t *testing.T) {
	f := newFixture()
	f.creds.On("Verify", mock.Anything, "mila", "s3cret").Return(&user.User{ID: 1}, nil).Once()

	w := f.serve(multipartRequest(t, map[string]string{
		"mode": "manual", "username": "mila", "password": "s3cret",
		"title": "Karma Police", "text": "Radiohead",
	}, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), model.MsgImageRequired)
	assert.NotContains(t, w.Body.String(), "s3cret")
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSong_BogusMode(t *testing.T) {
	f := newFixture()

	w := f.serve(multipartRequest(t, map[string]string{
		"mode": "bogus", "username": "mila", "password": "s3cret",
	}, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), model.MsgInvalidMode)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSong_BrokenMultipartReportsMode(t *testing.T) {
	f := newFixture()

	// body bị cắt trước closing boundary: mọi field đều mất, kể cả mode
	body := "--xyz\r\nContent-Disposition: form-data; name=\"mode\"\r\n\r\nbogus\r\n" +
		"--xyz\r\nContent-Disposition: form-data; name=\"image\"; filename=\"c.png\"\r\n\r\nabc"
	req := httptest.NewRequest(http.MethodPost, "/song", strings.NewReader(body))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")

	w := f.serve(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), model.MsgInvalidMode)
	assert.NotContains(t, w.Body.String(), model.MsgInvalidImage)
	f.creds.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSong_ManualSuccess(t *testing.T) {
	f := newFixture()
	f.creds.On("Verify", mock.Anything, "mila", "s3cret").Return(&user.User{ID: 1}, nil).Once()
	f.uploader.On("UploadCover", mock.Anything, []byte("img")).Return("http://cdn.test/songs/cover", nil).Once()
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	w := f.serve(multipartRequest(t, map[string]string{
		"mode": "manual", "username": "mila", "password": "s3cret",
		"title": "Karma Police", "text": "Radiohead",
	}, []byte("img")))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	f.repo.AssertExpectations(t)
}

func TestCreateSong_LinkedUpstreamFailure(t *testing.T) {
	f := newFixture()
	f.creds.On("Verify", mock.Anything, "mila", "s3cret").Return(&user.User{ID: 1}, nil).Once()
	f.fetcher.On("Fetch", mock.Anything, "https://open.spotify.com/track/x").Return(nil, errors.New("timeout")).Once()

	w := f.serve(multipartRequest(t, map[string]string{
		"mode": "linked", "username": "mila", "password": "s3cret",
		"spotify_url": "https://open.spotify.com/track/x",
	}, nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
