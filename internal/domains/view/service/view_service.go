package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	postrepo "songblog-backend/internal/domains/post/repository"
	songrepo "songblog-backend/internal/domains/song/repository"
	"songblog-backend/internal/domains/user"
	"songblog-backend/internal/domains/view/model"
)

type viewService struct {
	posts       postrepo.RepositoryInterface
	songs       songrepo.RepositoryInterface
	credentials user.Service
}

func NewViewService(
	posts postrepo.RepositoryInterface,
	songs songrepo.RepositoryInterface,
	credentials user.Service,
) ServiceInterface {
	return &viewService{
		posts:       posts,
		songs:       songs,
		credentials: credentials,
	}
}

// Home - không có post thì trả về view rỗng hoàn toàn, kể cả khi đã có song
func (s *viewService) Home(ctx context.Context) (*model.HomeView, error) {
	p, err := s.posts.FindLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest post: %w", err)
	}
	if p == nil {
		return &model.HomeView{}, nil
	}

	view := &model.HomeView{
		Title:  p.Title,
		Text:   p.Text,
		Author: s.credentials.AuthorName(ctx, p.UserID),
	}

	song, err := s.songs.FindLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest song: %w", err)
	}
	if song != nil {
		view.SongTitle = song.Title
		view.SongGroup = song.Group
		// author của song resolve theo owner của chính song đó
		view.SongAuthor = s.credentials.AuthorName(ctx, song.UserID)
		if song.ImageURL != nil {
			view.SongImage = *song.ImageURL
		}
	}

	return view, nil
}

func (s *viewService) Archive(ctx context.Context) ([]model.ArchiveItem, error) {
	posts, err := s.posts.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	items := make([]model.ArchiveItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, model.ArchiveItem{
			ID:        p.ID,
			Title:     p.Title,
			Author:    s.credentials.AuthorName(ctx, p.UserID),
			CreatedAt: p.CreatedAt.Format(model.DateLayout),
		})
	}
	return items, nil
}

func (s *viewService) Post(ctx context.Context, id int64) (*model.PostView, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.PostView{
		ID:        p.ID,
		Title:     p.Title,
		Text:      p.Text,
		Author:    s.credentials.AuthorName(ctx, p.UserID),
		CreatedAt: p.CreatedAt.Format(model.DateLayout),
	}, nil
}

func (s *viewService) ExportArchive(ctx context.Context) (*excelize.File, error) {
	items, err := s.Archive(ctx)
	if err != nil {
		return nil, err
	}

	f, err := buildArchiveWorkbook(items)
	if err != nil {
		return nil, fmt.Errorf("failed to build excel file: %w", err)
	}
	return f, nil
}
